// Package annotate records which errors an operation may produce.
//
// Error constructors (errors.Ref values, usually *errors.Kind) are attached to
// a function or to the methods of a type under slot names. Callers read the
// slots back to learn what an operation can fail with, and to test a returned
// error against the exact constructor that produced it. Annotation never
// changes how the function or method behaves.
//
// # Functions
//
// Go functions cannot carry fields, so a function is annotated through the
// Func wrapper:
//
//	var FindUser = annotate.WrapFunc(findUser, annotate.Errors{
//	    "NotFound": ErrUserNotFound,
//	})
//
//	_, err := FindUser.Fn()(ctx, id)
//	if FindUser.Err("NotFound").Match(err) { ... }
//
// # Types
//
// Every Go type has one method table, returned by ClassOf. Annotating it is
// visible from every value of the type:
//
//	annotate.AnnotateClass(annotate.ClassOf[UserService](), annotate.Methods{
//	    "Find": {"NotFound": ErrUserNotFound},
//	})
//
//	annotate.MethodOf(svc, "Find").Err("NotFound") // ErrUserNotFound
//
// # Semantics
//
//   - AnnotateFunc and AnnotateClass return their target, never a copy.
//   - Re-annotating a slot overwrites it; there is no conflict detection.
//   - Method names missing from the table are skipped without error.
//   - Reading a slot that was never annotated returns nil.
//
// WithErrors is a single entry point that accepts either kind of target.
//
// Annotation is meant to run once, at package initialisation. Tables and slots
// are safe for concurrent use, but concurrent writes to the same slot race in
// the last-write-wins sense.
package annotate

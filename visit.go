package udm

// Visit, VisitNumeric, VisitGeneric, VisitNonTrivial and VisitAll are the
// tag-dispatch primitives every codec and conversion site can share instead
// of hand-rolling its own category switch. They mirror the original's
// visit<T>/visit_ng function-template dispatch, reimplemented as closed
// switches over the Type enum since Go generics can't parameterize a single
// switch branch's callback type per case the way C++ partial specialization
// does — a literal translation would need one generic wrapper type per
// branch for no behavioral gain, so each function instead calls fn with the
// already-boxed any value and lets the callback type-assert, same as the
// rest of this package's dispatch sites already do.
//
// fn returning a non-nil error aborts the visit and that error is returned;
// a category mismatch (t not belonging to the function's category) returns
// ErrNotVisitable without calling fn.

// visitNumeric/visitGeneric/visitNonTrivial/visitAll: internal helpers
// VisitNumeric etc. wrap with the exported error-returning contract.
func visitNumeric(t Type, raw any, fn func(any) any) any {
	switch t {
	case Int8, UInt8, Int16, UInt16, Int32, UInt32, Int64, UInt64, Float, Double, Boolean, Half:
		return fn(raw)
	}
	return nil
}

func visitGeneric(t Type, raw any, fn func(any) any) any {
	switch t {
	case Vector2, Vector3, Vector4, Vector2i, Vector3i, Vector4i,
		Quaternion, EulerAngles, Srgba, HdrColor,
		Transform, ScaledTransform, Mat4, Mat3x4:
		return fn(raw)
	}
	return nil
}

func visitNonTrivial(t Type, raw any, fn func(any) any) any {
	if IsNonTrivial(t) {
		return fn(raw)
	}
	return nil
}

func visitAny(t Type, raw any, fn func(any) any) any {
	if v := visitNumeric(t, raw, fn); v != nil {
		return v
	}
	if v := visitGeneric(t, raw, fn); v != nil {
		return v
	}
	if t == Nil {
		return fn(nil)
	}
	return visitNonTrivial(t, raw, fn)
}

// ErrNotVisitable is returned by Visit/VisitNumeric/VisitGeneric/
// VisitNonTrivial when t doesn't belong to the category being dispatched.
var ErrNotVisitable = &Error{Kind: ErrKindLogic, Msg: "type does not belong to this visitor's category"}

// VisitNumeric calls fn with raw if t is one of the 12 numeric kinds,
// returning ErrNotVisitable otherwise.
func VisitNumeric(t Type, raw any, fn func(any) error) error {
	called := false
	visitNumeric(t, raw, func(v any) any { called = true; return v })
	if !called {
		return ErrNotVisitable
	}
	return fn(raw)
}

// VisitGeneric calls fn with raw if t is one of the fixed-size generic
// kinds (vectors, quaternion, matrices, transforms, color packs).
func VisitGeneric(t Type, raw any, fn func(any) error) error {
	called := false
	visitGeneric(t, raw, func(v any) any { called = true; return v })
	if !called {
		return ErrNotVisitable
	}
	return fn(raw)
}

// VisitNonTrivial calls fn with raw if t is one of the nine non-trivial
// kinds (strings, blobs, containers, references, structs).
func VisitNonTrivial(t Type, raw any, fn func(any) error) error {
	if !IsNonTrivial(t) {
		return ErrNotVisitable
	}
	return fn(raw)
}

// Visit dispatches t to whichever of VisitNumeric/VisitGeneric/
// VisitNonTrivial it belongs to; t == Nil calls fn(nil) directly.
func Visit(t Type, raw any, fn func(any) error) error {
	if t == Nil {
		return fn(nil)
	}
	if err := VisitNumeric(t, raw, fn); err != ErrNotVisitable {
		return err
	}
	if err := VisitGeneric(t, raw, fn); err != ErrNotVisitable {
		return err
	}
	return VisitNonTrivial(t, raw, fn)
}

// VisitAll is an alias for Visit, named to match the original's visit_ng
// (visit over every concrete kind, with no category restriction).
func VisitAll(t Type, raw any, fn func(any) error) error {
	return Visit(t, raw, fn)
}

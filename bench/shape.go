package bench

// Shape selects which guarded-value operation the workers of a trial drive.
type Shape int8

const (
	// ShapeSetValue drives Mutate: every iteration atomically stores a value
	// computed from the current one.
	ShapeSetValue Shape = iota

	// ShapeMutateValue drives MutateInPlace: every iteration atomically
	// modifies the value through a pointer. It is implemented but not part of
	// the default suite configuration.
	ShapeMutateValue
)

// String returns a human-readable name of the Shape.
func (s Shape) String() (humanReadable string) {
	switch s {
	case ShapeSetValue:
		return "setValue"
	case ShapeMutateValue:
		return "mutateValue"
	default:
		return "unknown"
	}
}

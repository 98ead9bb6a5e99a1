package oxide

// Tag identifies the variant a container holds.
type Tag uint8

const (
	// TagUnset marks a zero-value container that was never constructed.
	TagUnset Tag = iota
	TagOk
	TagErr
	TagSome
	TagNone
	TagLeft
	TagRight
)

func (t Tag) String() string {
	switch t {
	case TagOk:
		return "Ok"
	case TagErr:
		return "Err"
	case TagSome:
		return "Some"
	case TagNone:
		return "None"
	case TagLeft:
		return "Left"
	case TagRight:
		return "Right"
	default:
		return "Unset"
	}
}

// Family groups the two variants of one container kind.
type Family uint8

const (
	FamilyResult Family = iota + 1
	FamilyOption
	FamilyEither
)

func (f Family) String() string {
	switch f {
	case FamilyResult:
		return "Result"
	case FamilyOption:
		return "Option"
	case FamilyEither:
		return "Either"
	default:
		return "Unknown"
	}
}

// Family returns the family a tag belongs to, or zero for TagUnset.
func (t Tag) Family() Family {
	switch t {
	case TagOk, TagErr:
		return FamilyResult
	case TagSome, TagNone:
		return FamilyOption
	case TagLeft, TagRight:
		return FamilyEither
	default:
		return 0
	}
}

// Container is implemented by every instantiation of Result, Option and Either.
type Container interface {
	// Tag returns the active variant, TagUnset for a zero value
	Tag() Tag
	// Payload returns the held value boxed as any; nil for None
	Payload() any
}

// AnyResult is implemented by every Result instantiation and lets code that
// only knows a value at run time treat it as a Result.
type AnyResult interface {
	Container
	// Any erases the payload type, keeping id and creation time
	Any() Result[any]
}

package entity

// Origin is a normalised scheme://host[:port] string used as the permission key.
// The zero value means the origin could not be determined.
type Origin string

// String implements fmt.Stringer.
func (o Origin) String() string {
	return string(o)
}

// Known reports whether the origin was determined.
func (o Origin) Known() bool {
	return o != ""
}

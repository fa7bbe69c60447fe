package checks

func init() {
	Register("ValRequired", func() Check { return Required{} })
}

// Required passes when the input is present: neither nil nor "".
type Required struct{}

func (Required) Run(_ string, input any, _ []any) bool {
	if input == nil {
		return false
	}
	if s, ok := input.(string); ok && s == "" {
		return false
	}
	return true
}

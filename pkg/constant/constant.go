package constant

const (
	MinPasswordLength = 6
	MaxPasswordLength = 128

	MaxPageLimit = 100

	DefaultTokenType = "bearer"
)

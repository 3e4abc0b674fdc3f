package pure

// greetingPrefix is prepended to every name passed to Greet.
const greetingPrefix = "welcome "

// Greet returns the welcome message for name.
func Greet(name string) string {
	return greetingPrefix + name
}

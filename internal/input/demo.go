package input

// demoPasswords are the fixed samples used by demonstration mode. They walk
// the strength tiers from a trivially crackable numeric string up to a long
// random passphrase.
var demoPasswords = []string{
	"123456",
	"password",
	"Password1",
	"MyP@ssw0rd",
	"Tr0ub4dor&3",
	"correct-horse-battery-staple-2024!",
}

// DemoPasswords returns the demonstration sample set.
// It returns a copy so callers cannot mutate the fixed samples.
func DemoPasswords() []string {
	out := make([]string, len(demoPasswords))
	copy(out, demoPasswords)
	return out
}

package program

// Gcd returns the demonstration program: it reads two numbers and prints
// their greatest common divisor, by repeated subtraction.
func Gcd() *Program {
	return &Program{
		Name: "gcd",
		Codes: []int{
			901, 320, 901, 321, // a = input, b = input
			520, 221, 716, 812, // loop: if a == b goto done; if a > b goto a_less
			521, 220, 321, 604, // b = b - a; goto loop
			520, 221, 320, 604, // a_less: a = a - b; goto loop
			520, 902, 0, 0, // done: print a
		},
	}
}

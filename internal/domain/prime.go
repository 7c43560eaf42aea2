package domain

// PrimeVerdict is the outcome of a primality check bundled with a display message.
type PrimeVerdict struct {
	Input   int
	IsPrime bool
	Message string
}

package unitig

// nucleotide codes of Fragment.Seq
const (
	baseA byte = 1 + iota
	baseC
	baseG
	baseT
	baseN
)

// codeToBase maps a nucleotide code back to its character
const codeToBase = "ACGTN"

// baseToCode maps a nucleotide character to its code. Anything that isn't
// a/c/g/t (in either case) is N
var baseToCode = func() (t [256]byte) {
	for i := range t {
		t[i] = baseN
	}
	for i, c := range "ACGT" {
		t[c] = byte(i) + 1
		t[c+'a'-'A'] = byte(i) + 1
	}
	return
}()

// Encode converts a nucleotide string into codes
func Encode(seq []byte) []byte {
	codes := make([]byte, len(seq))
	for i, c := range seq {
		codes[i] = baseToCode[c]
	}
	return codes
}

// Decode converts nucleotide codes into an upper case nucleotide string
func Decode(codes []byte) []byte {
	seq := make([]byte, len(codes))
	for i, c := range codes {
		if c < baseA || c > baseN {
			c = baseN
		}
		seq[i] = codeToBase[c-1]
	}
	return seq
}

// complement returns the code of the complementary base. N is its own complement
func complement(c byte) byte {
	if c >= baseA && c <= baseT {
		return 5 - c
	}
	return c
}

// reverseComplement reverse complements a code sequence in place
func reverseComplement(codes []byte) {
	for i, j := 0, len(codes)-1; i < j; i, j = i+1, j-1 {
		codes[i], codes[j] = complement(codes[j]), complement(codes[i])
	}
	if len(codes)%2 == 1 {
		mid := len(codes) / 2
		codes[mid] = complement(codes[mid])
	}
}

// reverse reverses a byte slice in place
func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

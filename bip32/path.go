package bip32

import "strings"

// DerivationPath is an ordered sequence of child numbers (§3). An empty
// path denotes the master key.
type DerivationPath []ChildNumber

// ParseDerivationPath parses text of the form "m(/<u31>('|h)?)*" into a
// DerivationPath (§4.3). An empty string is the master path.
func ParseDerivationPath(text string) (DerivationPath, error) {
	tokens, err := splitPathTokens(text)
	if err != nil {
		return nil, err
	}

	path := make(DerivationPath, len(tokens))
	for i, tok := range tokens {
		cn, err := parseChildNumber(tok)
		if err != nil {
			return nil, err
		}
		path[i] = cn
	}
	return path, nil
}

// String renders the path back to its textual form, e.g. "m/44'/60/0".
func (p DerivationPath) String() string {
	var b strings.Builder
	b.WriteByte('m')
	for _, cn := range p {
		b.WriteByte('/')
		b.WriteString(cn.String())
	}
	return b.String()
}

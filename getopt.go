package getopt

// Parse scans tokens against set and returns the aggregate result.
//
// The scan is one synchronous forward pass: occurrence callbacks fire in
// emission order as events are produced, the aggregate callback (if any)
// fires exactly once after the last of them, and the first error of any
// kind aborts the call with no partial result.
func Parse(tokens []string, set Settings) (*Result, error) {
	result := makeResult()

	for ev, err := range Events(tokens, set) {
		if err != nil {
			return nil, err
		}

		result.add(ev)
	}

	if set.Callback != nil {
		if err := set.Callback(result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

package pointset

type KeySet map[Key]struct{}

func (s KeySet) Add(k Key) {
	s[k] = struct{}{}
}

func (s KeySet) Has(k Key) bool {
	_, ok := s[k]
	return ok
}

func (s KeySet) Len() int {
	return len(s)
}

// Keys in s that are missing from other.
func (s KeySet) Diff(other KeySet) []Key {
	var missing []Key
	for k := range s {
		if !other.Has(k) {
			missing = append(missing, k)
		}
	}
	return missing
}

func (s KeySet) Clone() KeySet {
	clone := make(KeySet, len(s))
	for k := range s {
		clone[k] = struct{}{}
	}
	return clone
}

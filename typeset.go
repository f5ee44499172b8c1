package kumiai

// typeSet is the ordered tuple of component types a typed builder was
// instantiated with. Bit i of every mask refers to slot i.
type typeSet []*TypeInfo

func newTypeSet(infos ...*TypeInfo) typeSet {
	if len(infos) > 32 {
		panic(ErrTooManyTerms)
	}
	return typeSet(infos)
}

func (s typeSet) tagMask() uint32 {
	var m uint32
	for i, t := range s {
		if t.IsTag {
			m |= 1 << i
		}
	}
	return m
}

func (s typeSet) referenceMask() uint32 {
	var m uint32
	for i, t := range s {
		if t.IsReference {
			m |= 1 << i
		}
	}
	return m
}

// duplicateMask flags every slot whose type already appeared earlier.
func (s typeSet) duplicateMask() uint32 {
	var m uint32
	for i := 1; i < len(s); i++ {
		for j := 0; j < i; j++ {
			if s[i].Type == s[j].Type {
				m |= 1 << i
				break
			}
		}
	}
	return m
}

// sparseMask depends on the world's live storage configuration and is
// therefore never cached.
func (s typeSet) sparseMask(w *World) uint32 {
	var m uint32
	for i, t := range s {
		if id, ok := w.lookupComponent(t.Type); ok && w.IsSparse(id) {
			m |= 1 << i
		}
	}
	return m
}

func (s typeSet) names(mask uint32) []string {
	out := make([]string, 0, len(s))
	for i, t := range s {
		if mask&(1<<i) != 0 {
			out = append(out, t.FullName)
		}
	}
	return out
}

func (s typeSet) fail(w *World, c Constraint, mask uint32) {
	err := &ValidationError{Constraint: c, Types: s.names(mask)}
	if w != nil {
		w.logger.Error().Err(err).Strs("types", err.Types).Msg("type set validation failed")
	}
	panic(err)
}

func (s typeSet) assertNoTags(w *World) {
	if !debugChecks {
		return
	}
	if m := s.tagMask(); m != 0 {
		s.fail(w, ConstraintNoTags, m)
	}
}

func (s typeSet) assertNoDuplicates(w *World) {
	if !debugChecks {
		return
	}
	if m := s.duplicateMask(); m != 0 {
		s.fail(w, ConstraintNoDuplicates, m)
	}
}

func (s typeSet) assertReferenceTypes(w *World, allowReferences bool) {
	if !debugChecks || allowReferences {
		return
	}
	if m := s.referenceMask(); m != 0 {
		s.fail(w, ConstraintNoReferences, m)
	}
}

func (s typeSet) assertSparseTypes(w *World, allowSparse bool) {
	if !debugChecks || allowSparse {
		return
	}
	if m := s.sparseMask(w); m != 0 {
		s.fail(w, ConstraintNoSparse, m)
	}
}

// assertConstruction runs the checks that gate whether a typed builder may
// exist at all. It must run before any term is registered.
func (s typeSet) assertConstruction(w *World) {
	s.assertNoTags(w)
	s.assertNoDuplicates(w)
}

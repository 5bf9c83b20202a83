package config

type IPsec struct {
	Phase1 []*Phase1 `json:"phase1,omitempty"`
}

func (s *IPsec) Correct() {
	for _, p := range s.Phase1 {
		p.Correct()
	}
}

func (s *IPsec) FindPhase1(descr string) (*Phase1, int) {
	for index, obj := range s.Phase1 {
		if obj.Id() == descr {
			return obj, index
		}
	}
	return nil, -1
}

func (s *IPsec) AddPhase1(value *Phase1) bool {
	_, find := s.FindPhase1(value.Id())
	if find == -1 {
		s.Phase1 = append(s.Phase1, value)
	}
	return find == -1
}

func (s *IPsec) SetPhase1(value *Phase1) bool {
	obj, find := s.FindPhase1(value.Id())
	if find == -1 {
		return false
	}
	*obj = *value
	return true
}

func (s *IPsec) DelPhase1(descr string) (*Phase1, bool) {
	obj, find := s.FindPhase1(descr)
	if find != -1 {
		s.Phase1 = append(s.Phase1[:find], s.Phase1[find+1:]...)
	}
	return obj, find != -1
}

// Clone copies the entry list so a failed or dry run can be rolled back.
// Phase1 carries only plain values, a struct copy is enough.
func (s *IPsec) Clone() *IPsec {
	c := &IPsec{}
	for _, obj := range s.Phase1 {
		value := *obj
		c.Phase1 = append(c.Phase1, &value)
	}
	return c
}

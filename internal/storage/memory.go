package storage

// Memory keeps slots in a map. Setting SaveErr makes every Save fail, which
// is how tests simulate a full disk.
type Memory struct {
	values  map[string][]byte
	SaveErr error
	Saves   int
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

func (m *Memory) Load(key string) ([]byte, bool, error) {
	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (m *Memory) Save(key string, data []byte) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	v := make([]byte, len(data))
	copy(v, data)
	m.values[key] = v
	m.Saves++
	return nil
}

// Set stores raw bytes without counting a save.
func (m *Memory) Set(key string, data []byte) {
	m.values[key] = data
}

package storage

// MemoryKV keeps values in a map. Data is lost on Close.
type MemoryKV struct {
	data map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (m *MemoryKV) Get(key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}
	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *MemoryKV) Set(key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	m.data[key] = value
	return nil
}

func (m *MemoryKV) Close() error {
	m.data = make(map[string]string)
	return nil
}

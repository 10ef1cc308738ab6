package storage

import "fyne.io/fyne/v2"

// Preferences stores slots in the Fyne app preferences, which persist
// between runs for apps created with a unique ID.
type Preferences struct {
	prefs fyne.Preferences
}

func NewPreferences(prefs fyne.Preferences) *Preferences {
	return &Preferences{prefs: prefs}
}

func (p *Preferences) Load(key string) ([]byte, bool, error) {
	v := p.prefs.String(key)
	if v == "" {
		return nil, false, nil
	}
	return []byte(v), true, nil
}

func (p *Preferences) Save(key string, data []byte) error {
	p.prefs.SetString(key, string(data))
	return nil
}

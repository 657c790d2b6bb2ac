package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	for _, name := range []FontName{HUD, HUDSmall} {
		if !Loaded(name) {
			t.Errorf("%s not loaded", name)
		}
	}
	if HUD.Get().Metrics().Height <= HUDSmall.Get().Metrics().Height {
		t.Error("HUD face is not larger than the small face")
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("broken", []byte("not a font"), 10); err == nil {
		t.Error("expected parse error")
	}
	if Loaded("broken") {
		t.Error("broken face registered")
	}
}

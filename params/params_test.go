package params

import "testing"

func TestNewStoreDefaults(t *testing.T) {
	s := NewStore()

	if s.ThreadCount() != 2 {
		t.Errorf("threadCount default: got %d, want 2", s.ThreadCount())
	}
	if !s.RayTracing() {
		t.Error("rayTracing should default on")
	}
	if s.PathTracing() {
		t.Error("pathTracing should default off")
	}
	if s.MaxRayDepth() != 3 {
		t.Errorf("maxRayDepth default: got %d, want 3", s.MaxRayDepth())
	}
	if s.PathTracingDiffuseRayCount() != 5 {
		t.Errorf("pathTracingDiffuseRayCount default: got %d, want 5", s.PathTracingDiffuseRayCount())
	}
	if !s.AntiAliasing() || s.AntiAliasingFactor() != 2 {
		t.Error("antiAliasing should default on with factor 2")
	}
	if !s.Shadows() || !s.SoftShadows() || s.HardShadows() {
		t.Error("shadows should default on with soft mode")
	}
	if s.LightRadius() != 0.5 || s.LightSamples() != 20 {
		t.Error("light radius/samples defaults mismatch")
	}
	if s.KdTreeBuilt() {
		t.Error("kdTreeBuilt should default false")
	}
}

func TestOnChangeFiresForInvalidatingOption(t *testing.T) {
	s := NewStore()
	var got Option
	s.OnChange(func(o Option) { got = o })

	s.SetShadows(false)
	if got != OptShadows {
		t.Fatalf("expected listener notified of OptShadows, got %v", got)
	}
}

func TestInvalidatingClassification(t *testing.T) {
	if OptInteractive.Invalidating() || OptFilter.Invalidating() || OptAntiAliasing.Invalidating() || OptAntiAliasingFactor.Invalidating() {
		t.Fatal("interactive/filter/antiAliasing* must not be invalidating")
	}
	if !OptShadows.Invalidating() || !OptMaxRayDepth.Invalidating() {
		t.Fatal("shadows/maxRayDepth must be invalidating")
	}
}

func TestSetSceneResetsKdTreeBuilt(t *testing.T) {
	s := NewStore()
	s.SetKdTreeBuilt(true)
	s.SetScene(2)
	if s.KdTreeBuilt() {
		t.Fatal("changing scene should reset kdTreeBuilt to false")
	}
}

func TestHardAndSoftShadowsAreMutuallyExclusive(t *testing.T) {
	s := NewStore()
	s.SetHardShadows(true)
	if s.SoftShadows() {
		t.Fatal("enabling hard shadows should disable soft shadows")
	}
	s.SetSoftShadows(true)
	if s.HardShadows() {
		t.Fatal("enabling soft shadows should disable hard shadows")
	}
}

func TestAntiAliasingFactorClampsToEnum(t *testing.T) {
	s := NewStore()
	s.SetAntiAliasingFactor(10)
	if s.AntiAliasingFactor() != 8 {
		t.Fatalf("expected 10 to round down to 8, got %d", s.AntiAliasingFactor())
	}
	s.SetAntiAliasingFactor(1)
	if s.AntiAliasingFactor() != 2 {
		t.Fatalf("expected 1 to clamp up to 2, got %d", s.AntiAliasingFactor())
	}
}

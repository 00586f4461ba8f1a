package main

import (
	"fmt"
	"os"
	"slices"

	"go.uber.org/zap"

	"github.com/Faultbox/ridgeline/internal/config"
	"github.com/Faultbox/ridgeline/internal/engine/debug"
	"github.com/Faultbox/ridgeline/internal/engine/input"
	"github.com/Faultbox/ridgeline/internal/engine/lighting"
	"github.com/Faultbox/ridgeline/internal/engine/scene"
	"github.com/Faultbox/ridgeline/internal/engine/terrain"
	"github.com/Faultbox/ridgeline/internal/game"
	"github.com/Faultbox/ridgeline/internal/logger"
)

func configCommand() error {
	data, err := config.Default().Marshal()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func sampleCommand(x, z float32) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	field, err := game.BuildField(cfg.Terrain)
	if err != nil {
		return err
	}

	y := field.Elevation(x, z)
	band := terrain.DefaultBands.BandAt(y)
	fmt.Printf("preset   %s (seed %d, noise %s)\n", cfg.Terrain.Preset, cfg.Terrain.Seed, cfg.Terrain.Noise)
	fmt.Printf("point    %.3f, %.3f (inside: %t)\n", x, z, field.Contains(x, z))
	fmt.Printf("height   %.4f\n", y)
	fmt.Printf("ground   %.4f\n", y+cfg.Player.Clearance)
	fmt.Printf("band     %s\n", band.Name)
	return nil
}

func previewCommand(out string, size int) error {
	if size < 1 {
		return fmt.Errorf("size must be positive, got %d", size)
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	field, err := game.BuildField(cfg.Terrain)
	if err != nil {
		return err
	}

	img := debug.Preview(field, float32(field.HalfSize), terrain.DefaultBands, lighting.DefaultSun(), size)
	if err := debug.SaveImage(out, img); err != nil {
		return err
	}
	logger.Info("preview written", zap.String("path", out), zap.Int("size", size))
	fmt.Println(out)
	return nil
}

func simulateCommand(frames int, dt float32, hold []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	state := input.NewState(nil)
	bound := boundKeys(input.DefaultBindings())
	for _, name := range hold {
		k := input.Key(name)
		if !slices.Contains(bound, k) {
			return fmt.Errorf("key %q is not bound to an action (have %v)", name, bound)
		}
		state.SetKey(k, true)
	}

	r := scene.NewNullRenderer()
	session, err := game.NewSession(cfg, r, logger.Named("game"))
	if err != nil {
		return err
	}
	for i := 0; i < frames; i++ {
		session.Step(dt, state.Snapshot())
		if err := session.Render(); err != nil {
			return err
		}
	}

	p, v := session.Player.Position, session.Player.Velocity
	hud := session.HUD()
	fmt.Printf("frames    %d (%.3fs simulated)\n", frames, session.Stats.Elapsed)
	fmt.Printf("position  %.4f, %.4f, %.4f  [%s]\n", p.X, p.Y, p.Z, hud.Position)
	fmt.Printf("velocity  %.4f, %.4f, %.4f  [%d km/h]\n", v.X, v.Y, v.Z, hud.Speed)
	fmt.Printf("state     %s\n", session.Player.State())
	fmt.Printf("score     %d (best %d)\n", session.Stats.Score, session.Stats.Best)
	fmt.Printf("jumps     %d, landings %d\n", session.Stats.Jumps, session.Stats.Landings)
	if hud.GameOver {
		fmt.Printf("health    0 (game over)\n")
	} else {
		fmt.Printf("health    %d\n", hud.Health)
	}
	return nil
}

func boundKeys(b input.Bindings) []input.Key {
	var keys []input.Key
	for _, ks := range b {
		keys = append(keys, ks...)
	}
	slices.Sort(keys)
	return slices.Compact(keys)
}

// vecdemo - spinning vector demo for the terminal.
// Spins the built-in cube, or a glTF model, about an axis with
// spring-smoothed input and draws it with the software renderer.
//
// Controls:
//
//	Arrows/WASD - Push the spin
//	Enter       - Random spin impulse
//	Space       - Hop
//	+/-         - Zoom
//	M           - Toggle wireframe / solid
//	H           - Toggle hidden lines
//	R           - Reset
//	Q/Esc       - Quit
package main

import (
	"context"
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/charmbracelet/fang"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"

	"github.com/taigrr/vecalg/pkg/models"
)

func main() {
	if err := fang.Execute(context.Background(), newRootCmd(), fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}

type options struct {
	config string
	fps    int
	axis   string
	speed  float64
	bg     string
	mode   string
	png    string
	frames int
	size   string
}

func newRootCmd() *cobra.Command {
	var opts options
	def := defaultScene()

	cmd := &cobra.Command{
		Use:   "vecdemo [model.glb]",
		Short: "Spin a vector mesh in the terminal",
		Long: "vecdemo spins the built-in cube, or a glTF model, about an axis. " +
			"Settings come from an optional YAML scene file; flags override it.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := resolveScene(cmd, opts, args)
			if err != nil {
				return err
			}
			mesh, err := loadMesh(scene.Model)
			if err != nil {
				return err
			}
			if opts.png != "" {
				return snapshot(cmd, scene, mesh, opts)
			}
			return run(cmd.Context(), scene, mesh)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.config, "config", "c", "", "YAML scene file")
	f.IntVar(&opts.fps, "fps", def.FPS, "target frames per second")
	f.StringVar(&opts.axis, "axis", def.Axis, `spin axis: "x", "-y", or "x,y,z"`)
	f.Float64Var(&opts.speed, "speed", def.Speed, "idle spin in radians per second")
	f.StringVar(&opts.bg, "bg", def.Background, `background as "R,G,B" or "#rrggbb"`)
	f.StringVar(&opts.mode, "mode", def.Mode, "render mode: wire or solid")
	f.StringVar(&opts.png, "png", "", "render headless and write the last frame to this PNG file")
	f.IntVar(&opts.frames, "frames", 30, "frames to simulate before writing --png")
	f.StringVar(&opts.size, "size", "120x40", "terminal size in cells for --png")
	return cmd
}

// resolveScene loads the scene file, if any, then applies flags the user
// set explicitly and the model argument.
func resolveScene(cmd *cobra.Command, opts options, args []string) (Scene, error) {
	scene := defaultScene()
	if opts.config != "" {
		var err error
		if scene, err = loadScene(opts.config); err != nil {
			return scene, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("fps") {
		scene.FPS = opts.fps
	}
	if changed("axis") {
		scene.Axis = opts.axis
	}
	if changed("speed") {
		scene.Speed = opts.speed
	}
	if changed("bg") {
		scene.Background = opts.bg
	}
	if changed("mode") {
		scene.Mode = opts.mode
	}
	if len(args) > 0 {
		scene.Model = args[0]
	}
	return scene, scene.Validate()
}

// snapshot simulates a number of frames without a terminal and saves the
// final framebuffer as a PNG.
func snapshot(cmd *cobra.Command, scene Scene, mesh *models.Mesh, opts options) error {
	var cols, rows int
	if _, err := fmt.Sscanf(opts.size, "%dx%d", &cols, &rows); err != nil || cols <= 0 || rows <= 0 {
		return fmt.Errorf("invalid size %q: want COLSxROWS", opts.size)
	}
	d, err := newDemo(scene, mesh, cols, rows)
	if err != nil {
		return err
	}
	for range max(opts.frames, 1) {
		d.step()
	}
	d.draw()
	if err := d.fb.SavePNG(opts.png); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s)\n", opts.png, d.status())
	return nil
}

func run(ctx context.Context, scene Scene, mesh *models.Mesh) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	d, err := newDemo(scene, mesh, width, height)
	if err != nil {
		return err
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	if err := term.Resize(width, height); err != nil {
		return fmt.Errorf("resize terminal: %w", err)
	}

	// fang cancels ctx on SIGINT/SIGTERM.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Events arrive on their own goroutine; the frame loop owns the demo.
	keys := make(chan string, 16)
	sizes := make(chan [2]int, 1)
	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				select {
				case sizes <- [2]int{ev.Width, ev.Height}:
				default:
				}
			case uv.KeyPressEvent:
				select {
				case keys <- ev.String():
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
		fmt.Fprintln(os.Stderr, d.status())
	}
	defer cleanup()

	frame := time.NewTicker(time.Second / time.Duration(scene.FPS))
	defer frame.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case k := <-keys:
			if !d.key(k) {
				return nil
			}
			continue
		case sz := <-sizes:
			width, height = sz[0], sz[1]
			term.Erase()
			if err := term.Resize(width, height); err != nil {
				return fmt.Errorf("resize terminal: %w", err)
			}
			d.resize(width, height)
			continue
		case <-frame.C:
		}

		d.step()
		d.draw()
		d.fb.Draw(term, term.Bounds())
		if err := term.Display(); err != nil {
			return fmt.Errorf("display: %w", err)
		}
	}
}

package main

import (
	"fmt"
	"log"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alan0201tw/MandelbrotSet/programs"
)

const (
	defaultWidth      = 512
	defaultHeight     = 512
	defaultIterations = 100
)

type options struct {
	width      int
	height     int
	iterations int
	program    string
	vsync      bool
	debug      bool
}

func (o *options) validate() error {
	if o.width <= 0 || o.height <= 0 {
		return fmt.Errorf("window size %vx%v is not positive", o.width, o.height)
	}
	if o.iterations <= 0 {
		return fmt.Errorf("iteration cap %v is not positive", o.iterations)
	}
	if _, ok := programs.LookupProgram(o.program); !ok {
		return fmt.Errorf("unknown program %q (have %v)", o.program, strings.Join(programs.Names(), ", "))
	}
	return nil
}

func main() {
	// glfw and GL calls must all happen on the main thread.
	runtime.LockOSThread()

	if err := rootCmd().Execute(); err != nil {
		log.Fatalln(err)
	}
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "mandelbrot",
		Short: "Interactively explore the Mandelbrot set, rendered on the GPU",
		Long: "Renders the Mandelbrot set with a per-pixel escape-time fragment shader.\n" +
			"Hold Q/E to zoom in/out and WASD to pan; Escape quits.",
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			return run(opts)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", defaultWidth, "window width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", defaultHeight, "window height in pixels")
	cmd.Flags().IntVar(&opts.iterations, "iterations", defaultIterations, "escape-time iteration cap")
	cmd.Flags().StringVar(&opts.program, "program", "hue", "render program: "+strings.Join(programs.Names(), ", "))
	cmd.Flags().BoolVar(&opts.vsync, "vsync", true, "lock presentation to the display refresh rate")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "log GL debug output")

	return cmd
}

func run(opts *options) error {
	program, ok := programs.LookupProgram(opts.program)
	if !ok {
		return fmt.Errorf("unknown program %q", opts.program)
	}

	window, err := NewWindow(opts.width, opts.height, "Mandelbrot Set", opts.vsync)
	if err != nil {
		return err
	}
	defer window.Close()

	renderer, err := NewRenderer(window, program, int32(opts.iterations), opts.debug)
	if err != nil {
		return err
	}
	defer renderer.Close()

	renderer.Run()
	return nil
}

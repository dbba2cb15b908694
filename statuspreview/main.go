// Command statuspreview renders the M5Stack status bar to a PNG, for
// checking layouts without flashing a device.
package main

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/harveysanders/m5statusbar/statusbar"
)

var (
	version = "dev"
	commit  = "n/a"
)

// CLI holds the preview options. Every flag can also be set from a YAML
// config file.
type CLI struct {
	Name     string  `help:"Renderer name. Empty uses the default name." name:"name"`
	Level    float32 `help:"Battery level in percent." default:"100" name:"level"`
	Charging bool    `help:"Show the battery as charging." name:"charging"`
	Full     bool    `help:"Show the battery as fully charged." name:"full"`
	MAC      string  `help:"Peer MAC address shown after the name." name:"mac"`
	HideMAC  bool    `help:"Mask all but the last octet of --mac." name:"hide-mac"`
	Text     string  `help:"Text printed in the bar instead of name and MAC." name:"text"`
	Out      string  `help:"Output PNG path." default:"statusbar.png" short:"o" type:"path" name:"out"`
	LogLevel string  `help:"Log level." default:"info" enum:"debug,info,warn,error" name:"log-level"`
	Version  bool    `help:"Show version information." short:"v" name:"version"`
}

// Validate is called by kong after parsing.
func (c *CLI) Validate() error {
	if c.Level < 0 || c.Level > 100 {
		return fmt.Errorf("--level must be between 0 and 100, got %v", c.Level)
	}
	if c.MAC != "" {
		if _, err := statusbar.ParseMAC(c.MAC); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Description("Render the M5Stack status bar to a PNG."),
		kong.Configuration(kongyaml.Loader, "./statuspreview.yaml", "~/.config/statuspreview/config.yaml"),
	)

	if cli.Version {
		fmt.Printf("statuspreview version: %s\nCommit: %s\n", version, commit)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(cli.LogLevel),
	}))

	img, err := render(cli, logger)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	if err := writePNG(cli.Out, img); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	logger.Info("wrote preview", slog.String("path", cli.Out))
}

// staticPower reports a fixed battery state.
type staticPower struct {
	level    float32
	charging bool
	full     bool
}

func (p staticPower) BatteryLevel() float32 { return p.level }

func (p staticPower) IsCharging() bool { return p.charging }

func (p staticPower) IsChargeFull() bool { return p.full }

// render draws a full screen the way the firmware does on boot.
func render(cli CLI, logger *slog.Logger) (*image.RGBA, error) {
	c := newCanvas(statusbar.ScreenWidth, statusbar.ScreenHeight)
	power := staticPower{level: cli.Level, charging: cli.Charging, full: cli.Full}

	var bar *statusbar.Renderer
	if cli.Name == "" {
		bar = statusbar.New(c, power, logger)
	} else {
		bar = statusbar.NewNamed(cli.Name, c, power, logger)
	}

	text := cli.Text
	if text == "" {
		text = bar.Name()
		if cli.MAC != "" {
			mac, err := statusbar.ParseMAC(cli.MAC)
			if err != nil {
				return nil, err
			}
			text += " " + bar.MACAddressString(mac, cli.HideMAC)
		}
	}

	ctx := statusbar.NewDrawContext()
	if err := c.FillRectangle(0, 0, statusbar.ScreenWidth, statusbar.ScreenHeight, statusbar.Black.RGB()); err != nil {
		return nil, err
	}
	bar.DrawBar(ctx)
	bar.PrintInBar(ctx, text)
	bar.DrawBatteryState(ctx)
	logger.Debug("rendered", slog.String("text", text), slog.Any("level", cli.Level))
	return c.img, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}

package desktop

import (
	"context"
	"strings"
)

// screenshotScript captures the root window as PNG and emits it base64
// encoded on a single line. It runs entirely inside the box.
const screenshotScript = "import -silent -window root png:- | base64 -w 0"

// Screenshot is a captured desktop image. Data is the base64 PNG payload as
// produced inside the box; it is treated as opaque and never decoded here.
type Screenshot struct {
	Data   string `yaml:"data"   json:"data"`
	Width  int    `yaml:"width"  json:"width"`
	Height int    `yaml:"height" json:"height"`
	Format string `yaml:"format" json:"format"`
}

// CaptureScreenshot captures the desktop and returns the base64 PNG payload.
// Width and height are reported from the configured display geometry, not
// measured from the image: if the live display has drifted from the
// configuration, the reported dimensions will be wrong even though the
// payload itself is correct.
func (d *Desktop) CaptureScreenshot(ctx context.Context) (Screenshot, error) {
	res, err := d.run(ctx, "screenshot()", []string{"sh", "-c", screenshotScript})
	if err != nil {
		return Screenshot{}, err
	}
	return Screenshot{
		Data:   strings.TrimSpace(res.Stdout),
		Width:  d.cfg.DisplayWidth,
		Height: d.cfg.DisplayHeight,
		Format: "png",
	}, nil
}

package ui

import (
	"bytes"
	"fmt"
	"image"
	png "image/png"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/danielpatrickdp/noisyfit/internal/plot"
	"github.com/danielpatrickdp/noisyfit/internal/session"
)

// #region ui-state

// UI owns the window and keeps the widgets bound to the session. All updates
// happen on the fyne event loop; a slider event runs its recompute cycle to
// completion before the next event is handled.
type UI struct {
	app    fyne.App
	window fyne.Window
	sess   *session.Session
	log    *logrus.Logger

	sigmaSlider *widget.Slider
	sigmaValue  *widget.Label
	nSlider     *widget.Slider
	nValue      *widget.Label

	reportText *widget.RichText
	chartImage *canvas.Image
}

// #endregion ui-state

// #region constructor

// New builds the window: the two sliders stacked vertically, the live report,
// the chart, and the static data-flow block underneath.
func New(sess *session.Session, log *logrus.Logger) *UI {
	u := &UI{
		app:  app.New(),
		sess: sess,
		log:  log,
	}
	u.window = u.app.NewWindow("noisyfit: linear regression with controllable noise")

	sigma := sess.SigmaControl()
	u.sigmaSlider = widget.NewSlider(sigma.Min, sigma.Max)
	u.sigmaSlider.Step = sigma.Step
	u.sigmaSlider.SetValue(sigma.Value)
	u.sigmaValue = widget.NewLabel(fmt.Sprintf("%.1f", sigma.Value))
	u.sigmaSlider.OnChanged = u.onSigmaChanged

	n := sess.NControl()
	u.nSlider = widget.NewSlider(n.Min, n.Max)
	u.nSlider.Step = n.Step
	u.nSlider.SetValue(n.Value)
	u.nValue = widget.NewLabel(fmt.Sprintf("%d", n.Int()))
	u.nSlider.OnChanged = u.onNChanged

	u.reportText = widget.NewRichTextFromMarkdown(sess.Report())
	u.reportText.Wrapping = fyne.TextWrapWord

	u.chartImage = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, plot.DefaultWidth, plot.DefaultHeight)))
	u.chartImage.FillMode = canvas.ImageFillContain
	u.chartImage.SetMinSize(fyne.NewSize(plot.DefaultWidth/2, plot.DefaultHeight/2))
	u.refreshChart()

	flowDoc := widget.NewRichTextFromMarkdown(sess.FlowDoc())
	flowDoc.Wrapping = fyne.TextWrapWord

	controlsPanel := container.NewVBox(
		container.NewBorder(nil, nil, widget.NewLabel(sigma.Label), u.sigmaValue, u.sigmaSlider),
		container.NewBorder(nil, nil, widget.NewLabel(n.Label), u.nValue, u.nSlider),
	)

	u.window.SetContent(container.NewVScroll(container.NewVBox(
		controlsPanel,
		widget.NewSeparator(),
		u.reportText,
		u.chartImage,
		widget.NewSeparator(),
		flowDoc,
	)))
	u.window.Resize(fyne.NewSize(900, 760))
	return u
}

// #endregion constructor

// #region events

func (u *UI) onSigmaChanged(v float64) {
	snap, err := u.sess.SetSigma(v)
	if err != nil {
		u.showError(err)
		return
	}
	u.sigmaValue.SetText(fmt.Sprintf("%.1f", snap.Sigma))
	u.refresh()
}

func (u *UI) onNChanged(v float64) {
	snap, err := u.sess.SetN(v)
	if err != nil {
		u.showError(err)
		return
	}
	u.nValue.SetText(fmt.Sprintf("%d", snap.N))
	u.refresh()
}

// refresh re-renders the dynamic outputs from the session's current values.
func (u *UI) refresh() {
	u.reportText.ParseMarkdown(u.sess.Report())
	u.refreshChart()
}

func (u *UI) refreshChart() {
	data, err := u.sess.ChartPNG()
	if err != nil {
		u.showError(err)
		return
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		u.showError(fmt.Errorf("decode chart png: %w", err))
		return
	}
	u.chartImage.Image = img
	u.chartImage.Refresh()
}

// showError surfaces a failed cycle in the report area; the previous chart
// stays on screen (no retry, no recovery).
func (u *UI) showError(err error) {
	u.log.WithError(err).Error("recompute failed")
	u.reportText.ParseMarkdown(fmt.Sprintf("### Recompute failed\n\n```\n%v\n```", err))
}

// #endregion events

// #region run

// Run shows the window and blocks on the fyne event loop.
func (u *UI) Run() {
	u.window.ShowAndRun()
}

// #endregion run

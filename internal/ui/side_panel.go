package ui

import (
	"fmt"
	"image/color"
	"slices"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/mesh-designer/internal/model"
	"github.com/ytget/mesh-designer/internal/session"
)

// SidePanel holds the grid, canvas and palette controls
type SidePanel struct {
	session *session.Session
	loc     *Localization
	window  fyne.Window
	canvas  *MeshCanvas

	rows       *widget.Slider
	cols       *widget.Slider
	resolution *widget.Slider
	blur       *widget.Slider
	rowsValue  *widget.Label
	colsValue  *widget.Label
	resValue   *widget.Label
	blurValue  *widget.Label

	fixedWidth  *widget.Check
	fixedHeight *widget.Check
	widthEntry  *widget.Entry
	heightEntry *widget.Entry
	background  *widget.Select
	bgOptions   map[string]model.ColorID

	pointLabel *widget.Label
	paletteBox *fyne.Container
	swatches   []model.PaletteColor
	hexEntry   *widget.Entry

	// syncing is set while widgets are updated from the session so their
	// callbacks do not write the values back
	syncing bool
	content fyne.CanvasObject
}

// NewSidePanel creates the panel for s. Palette colors are assigned to the
// point selected on c.
func NewSidePanel(s *session.Session, c *MeshCanvas, loc *Localization, window fyne.Window) *SidePanel {
	p := &SidePanel{
		session: s,
		loc:     loc,
		window:  window,
		canvas:  c,
	}
	p.createUI()
	p.Refresh()
	return p
}

// Content returns the panel widget tree
func (p *SidePanel) Content() fyne.CanvasObject {
	return p.content
}

func (p *SidePanel) createUI() {
	p.rows, p.rowsValue = p.intSlider(model.MinGridSize, model.MaxGridSize, func(v int) {
		p.report(p.session.SetRows(v))
	})
	p.cols, p.colsValue = p.intSlider(model.MinGridSize, model.MaxGridSize, func(v int) {
		p.report(p.session.SetCols(v))
	})
	p.resolution, p.resValue = p.intSlider(model.MinResolution, model.MaxResolution, p.session.SetResolution)
	p.blur, p.blurValue = p.intSlider(0, model.MaxBlurLevel, func(v int) {
		p.session.SetBlurLevel(float64(v))
	})

	p.fixedWidth = widget.NewCheck(p.loc.GetText(KeyFixedWidth), func(fixed bool) {
		if !p.syncing && fixed != (p.session.Settings().WidthMode == model.DimensionFixed) {
			p.session.ToggleWidthMode()
		}
	})
	p.fixedHeight = widget.NewCheck(p.loc.GetText(KeyFixedHeight), func(fixed bool) {
		if !p.syncing && fixed != (p.session.Settings().HeightMode == model.DimensionFixed) {
			p.session.ToggleHeightMode()
		}
	})
	p.widthEntry = p.sizeEntry(func(v int) {
		p.session.SetCanvasSize(v, p.session.Settings().Height)
	})
	p.heightEntry = p.sizeEntry(func(v int) {
		p.session.SetCanvasSize(p.session.Settings().Width, v)
	})

	p.background = widget.NewSelect(nil, func(option string) {
		if p.syncing {
			return
		}
		if id, ok := p.bgOptions[option]; ok {
			p.report(p.session.SetBackground(id))
		}
	})

	p.pointLabel = widget.NewLabel("")
	p.pointLabel.Truncation = fyne.TextTruncateEllipsis
	p.paletteBox = container.NewVBox()

	p.hexEntry = widget.NewEntry()
	p.hexEntry.SetPlaceHolder(p.loc.GetText(KeyHexPlaceholder))
	p.hexEntry.Validator = func(s string) error {
		_, err := model.ParseHex(s)
		return err
	}
	p.hexEntry.OnSubmitted = func(string) { p.onAddColor() }
	addBtn := widget.NewButtonWithIcon(p.loc.GetText(KeyAddColor), theme.ContentAddIcon(), p.onAddColor)

	distributeBtn := widget.NewButton(p.loc.GetText(KeyDistribute), p.session.DistributeEvenly)
	resetBtn := widget.NewButton(p.loc.GetText(KeyReset), p.session.Reset)

	p.content = container.NewVBox(
		p.labeled(KeyRows, p.rowsValue, p.rows),
		p.labeled(KeyCols, p.colsValue, p.cols),
		p.labeled(KeyResolution, p.resValue, p.resolution),
		p.labeled(KeyBlur, p.blurValue, p.blur),
		container.NewGridWithColumns(2, distributeBtn, resetBtn),
		widget.NewSeparator(),
		container.NewBorder(nil, nil, p.fixedWidth, nil, p.widthEntry),
		container.NewBorder(nil, nil, p.fixedHeight, nil, p.heightEntry),
		container.NewBorder(nil, nil, widget.NewLabel(p.loc.GetText(KeyBackground)), nil, p.background),
		widget.NewSeparator(),
		widget.NewLabelWithStyle(p.loc.GetText(KeyPalette), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		p.pointLabel,
		p.paletteBox,
		container.NewBorder(nil, nil, nil, addBtn, p.hexEntry),
	)
}

// intSlider creates a whole-number slider that reports its final value once
// the user lets go, so one gesture is one undo step
func (p *SidePanel) intSlider(lo, hi int, onChange func(int)) (*widget.Slider, *widget.Label) {
	value := widget.NewLabel("")
	slider := widget.NewSlider(float64(lo), float64(hi))
	slider.Step = 1
	slider.OnChanged = func(v float64) {
		value.SetText(strconv.Itoa(int(v)))
	}
	slider.OnChangeEnded = func(v float64) {
		if !p.syncing {
			onChange(int(v))
		}
	}
	return slider, value
}

func (p *SidePanel) sizeEntry(onSubmit func(int)) *widget.Entry {
	entry := widget.NewEntry()
	entry.Validator = func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return fmt.Errorf("%w: %q is not a size", model.ErrInvalidFormat, s)
		}
		return nil
	}
	entry.OnSubmitted = func(s string) {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			onSubmit(v)
		}
	}
	return entry
}

func (p *SidePanel) labeled(key string, value *widget.Label, control fyne.CanvasObject) fyne.CanvasObject {
	return container.NewBorder(nil, nil, widget.NewLabel(p.loc.GetText(key)), value, control)
}

// Refresh copies the session state into the controls
func (p *SidePanel) Refresh() {
	st := p.session.Settings()
	pal := p.session.Palette()

	p.syncing = true
	defer func() { p.syncing = false }()

	p.rows.SetValue(float64(st.Rows))
	p.cols.SetValue(float64(st.Cols))
	p.resolution.SetValue(float64(st.Resolution))
	p.blur.SetValue(st.BlurLevel)
	p.rowsValue.SetText(strconv.Itoa(st.Rows))
	p.colsValue.SetText(strconv.Itoa(st.Cols))
	p.resValue.SetText(strconv.Itoa(st.Resolution))
	p.blurValue.SetText(strconv.Itoa(int(st.BlurLevel)))

	p.fixedWidth.SetChecked(st.WidthMode == model.DimensionFixed)
	p.fixedHeight.SetChecked(st.HeightMode == model.DimensionFixed)
	p.widthEntry.SetText(strconv.Itoa(st.Width))
	p.heightEntry.SetText(strconv.Itoa(st.Height))

	none := p.loc.GetText(KeyNone)
	p.bgOptions = map[string]model.ColorID{none: model.NoColor}
	options := []string{none}
	selected := none
	for _, c := range pal.All() {
		label := "#" + c.Hex(true)
		p.bgOptions[label] = c.ID
		options = append(options, label)
		if c.ID == st.BackgroundColorID {
			selected = label
		}
	}
	p.background.Options = options
	p.background.SetSelected(selected)

	p.refreshPoint()
	if colors := pal.All(); !slices.Equal(colors, p.swatches) {
		p.swatches = colors
		p.rebuildPalette()
	}
}

// refreshPoint shows the selected point and its color
func (p *SidePanel) refreshPoint() {
	row, col, ok := p.canvas.Selected()
	if !ok {
		p.pointLabel.SetText(p.loc.GetText(KeyNoPoint))
		return
	}
	pt, err := p.session.Point(row, col)
	if err != nil {
		p.pointLabel.SetText(p.loc.GetText(KeyNoPoint))
		return
	}

	color := IconNone
	if c, found := p.session.Palette().Lookup(pt.ColorID); found {
		color = "#" + c.Hex(true)
	}
	p.pointLabel.SetText(p.loc.GetText(KeyPoint) + " " + fmt.Sprintf(PointLabelFormat, row, col) + MiddleDotSeparator + color)
}

func (p *SidePanel) rebuildPalette() {
	rows := make([]fyne.CanvasObject, 0, len(p.swatches))
	for _, c := range p.swatches {
		rows = append(rows, p.swatchRow(c))
	}
	p.paletteBox.Objects = rows
	p.paletteBox.Refresh()
}

func (p *SidePanel) swatchRow(c model.PaletteColor) fyne.CanvasObject {
	id := c.ID

	swatch := canvas.NewRectangle(c.RGBA().NRGBA())
	swatch.SetMinSize(fyne.NewSize(SwatchSize, SwatchSize))
	swatch.StrokeColor = theme.Color(theme.ColorNameShadow)
	swatch.StrokeWidth = 1
	swatch.CornerRadius = 3

	label := widget.NewLabel("#" + c.Hex(true))

	useBtn := widget.NewButtonWithIcon("", theme.ConfirmIcon(), func() {
		row, col, ok := p.canvas.Selected()
		if !ok {
			return
		}
		p.report(p.session.SetPointColor(row, col, id))
	})
	useBtn.Importance = widget.LowImportance

	editBtn := widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
		p.onEditColor(c)
	})
	editBtn.Importance = widget.LowImportance

	removeBtn := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		p.report(p.session.RemoveColor(id))
	})
	removeBtn.Importance = widget.LowImportance

	return container.NewBorder(nil, nil,
		container.NewHBox(container.NewCenter(swatch), label),
		container.NewHBox(useBtn, editBtn, removeBtn),
	)
}

// onEditColor opens a color picker for c and stores the picked color under
// the same id
func (p *SidePanel) onEditColor(c model.PaletteColor) {
	picker := dialog.NewColorPicker(p.loc.GetText(KeyEditColor), "#"+c.Hex(true), func(picked color.Color) {
		p.report(p.session.UpdateColor(c.ID, paletteColorOf(picked)))
	}, p.window)
	picker.Advanced = true
	picker.SetColor(c.RGBA().NRGBA())
	picker.Show()
}

// paletteColorOf converts a picked color to palette components
func paletteColorOf(c color.Color) model.PaletteColor {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	pc := model.NewPaletteColor(n.R, n.G, n.B)
	pc.Alpha = float64(n.A) / 255
	return pc
}

func (p *SidePanel) onAddColor() {
	c, err := model.ParseHex(p.hexEntry.Text)
	if err != nil {
		dialog.ShowError(err, p.window)
		return
	}
	p.session.AddColor(c)
	p.hexEntry.SetText("")
}

// report shows failed edits; successful ones refresh through the session callback
func (p *SidePanel) report(err error) {
	if err != nil {
		dialog.ShowError(err, p.window)
	}
}

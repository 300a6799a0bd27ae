package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// toastAction is a button shown on a toast
type toastAction struct {
	label string
	onTap func()
}

// showToast shows a short-lived message in the top-right corner of the
// window. It must be called on the UI thread.
func (ui *RootUI) showToast(title, message string, isError bool, actions ...toastAction) {
	titleLabel := widget.NewLabel(title)
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	if isError {
		titleLabel.Importance = widget.DangerImportance
	}

	messageLabel := widget.NewLabel(message)
	messageLabel.Wrapping = fyne.TextWrapWord

	var popup *widget.PopUp
	closeBtn := widget.NewButtonWithIcon("", theme.CancelIcon(), func() {
		popup.Hide()
	})
	closeBtn.Importance = widget.LowImportance

	buttons := container.NewHBox()
	for i, action := range actions {
		btn := widget.NewButton(action.label, func() {
			action.onTap()
			popup.Hide()
		})
		if i == 0 {
			btn.Importance = widget.HighImportance
		}
		buttons.Add(btn)
	}

	content := container.NewVBox(
		container.NewBorder(nil, nil, nil, closeBtn, titleLabel),
		messageLabel,
	)
	if len(actions) > 0 {
		content.Add(buttons)
	}

	popup = widget.NewPopUp(content, ui.window.Canvas())
	canvasSize := ui.window.Canvas().Size()
	size := fyne.NewSize(ToastWidth, max(ToastHeight, content.MinSize().Height))
	popup.Resize(size)
	popup.Move(fyne.NewPos(canvasSize.Width-size.Width-ToastMargin, ToastMargin))
	popup.Show()

	time.AfterFunc(ToastAutoHide, func() {
		fyne.Do(popup.Hide)
	})
}

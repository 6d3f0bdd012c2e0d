package ui

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/pngify/pngify/internal/config"
	"github.com/pngify/pngify/internal/convert"
	"github.com/pngify/pngify/internal/model"
	"github.com/pngify/pngify/internal/platform"
	"github.com/pngify/pngify/internal/preview"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	session      *Session
	previewMgr   *preview.Manager
	convertSvc   convert.Converter
	settings     *config.Settings
	localization *Localization

	// Controls
	chooseBtn  *widget.Button
	convertBtn *widget.Button
	resetBtn   *widget.Button

	// Preview region
	previewImage  *canvas.Image
	fileNameLabel *widget.Label
	fileSizeLabel *widget.Label
	previewBox    *fyne.Container
	dropHint      *widget.Label

	// Status region
	statusLabel *widget.Label
	progressBar *widget.ProgressBarInfinite

	// Conversion history
	historyList  *widget.List
	historyTasks []*model.ConversionTask
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, convertSvc convert.Converter) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		session:      NewSession(),
		previewMgr:   preview.NewManager(),
		convertSvc:   convertSvc,
		settings:     settings,
		localization: localization,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Pipeline progress updates arrive from the conversion goroutine
	ui.convertSvc.SetUpdateCallback(ui.onTaskUpdate)
	ui.previewMgr.SetChangeCallback(ui.onPreviewChange)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Controls row
	ui.chooseBtn = widget.NewButton(ui.localization.GetText(KeyChooseFile), ui.onChooseFile)
	ui.convertBtn = widget.NewButton(ui.localization.GetText(KeyConvert), ui.onConvertClick)
	ui.convertBtn.Importance = widget.HighImportance
	ui.resetBtn = widget.NewButton(ui.localization.GetText(KeyReset), ui.onResetClick)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	buttonRow := container.NewHBox(ui.chooseBtn, ui.convertBtn, ui.resetBtn, settingsBtn)

	// Status row under the controls
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Alignment = fyne.TextAlignLeading
	ui.progressBar = widget.NewProgressBarInfinite()
	ui.progressBar.Hide()
	statusRow := container.NewHBox(ui.progressBar, container.NewPadded(ui.statusLabel))

	// Preview region, hidden until a file is selected
	ui.previewImage = &canvas.Image{}
	ui.previewImage.FillMode = canvas.ImageFillContain
	ui.previewImage.SetMinSize(fyne.NewSize(PreviewMinWidth, PreviewMinHeight))

	ui.fileNameLabel = widget.NewLabel("")
	ui.fileNameLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.fileSizeLabel = widget.NewLabel("")

	ui.previewBox = container.NewVBox(
		ui.previewImage,
		container.NewHBox(ui.fileNameLabel, widget.NewLabel(MiddleDotSeparator), ui.fileSizeLabel),
	)
	ui.previewBox.Hide()

	ui.dropHint = widget.NewLabel(ui.localization.GetText(KeyDropHint))
	ui.dropHint.Alignment = fyne.TextAlignCenter
	ui.dropHint.TextStyle = fyne.TextStyle{Italic: true}

	// Conversion history
	ui.historyList = widget.NewList(
		func() int {
			return len(ui.historyTasks)
		},
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateHistoryItem(id, obj) },
	)
	ui.historyList.OnSelected = ui.onHistoryItemSelected
	historyPanel := container.NewBorder(
		widget.NewLabel(ui.localization.GetText(KeyHistoryTitle)),
		nil, nil, nil,
		ui.historyList,
	)

	top := container.NewVBox(buttonRow, statusRow)
	selectionArea := container.NewVBox(ui.dropHint, ui.previewBox)

	split := container.NewVSplit(selectionArea, historyPanel)
	split.SetOffset(0.7)

	content := container.NewBorder(top, nil, nil, nil, split)
	ui.window.SetContent(content)

	// The whole window doubles as the drop target
	ui.window.SetOnDropped(ui.onDropped)

	ui.refreshControls()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.chooseBtn.SetText(ui.localization.GetText(KeyChooseFile))
	ui.convertBtn.SetText(ui.localization.GetText(KeyConvert))
	ui.resetBtn.SetText(ui.localization.GetText(KeyReset))
	ui.dropHint.SetText(ui.localization.GetText(KeyDropHint))

	ui.historyList.Refresh()
}

// onChooseFile opens the file picker restricted to JPEG input
func (ui *RootUI) onChooseFile() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			log.Printf("File open dialog failed: %v", err)
			return
		}
		if reader == nil {
			return // cancelled
		}
		defer reader.Close()

		file, rerr := readSourceFile(reader)
		if rerr != nil {
			log.Printf("Failed to read picked file: %v", rerr)
			ui.showTransientError(ui.localization.GetText(KeyErrorOpening))
			return
		}
		ui.handleCandidate(file)
	}, ui.window)

	fileDialog.SetFilter(storage.NewExtensionFileFilter(InputExtensions))
	fileDialog.Show()
}

// onDropped handles files dropped onto the window. Multi-file drops are
// truncated to the first entry.
func (ui *RootUI) onDropped(_ fyne.Position, uris []fyne.URI) {
	if len(uris) == 0 {
		return
	}
	uri := uris[0]

	reader, err := storage.Reader(uri)
	if err != nil {
		log.Printf("Failed to open dropped file %s: %v", uri.Name(), err)
		ui.showTransientError(ui.localization.GetText(KeyErrorOpening))
		return
	}
	defer reader.Close()

	file, rerr := readSourceFile(reader)
	if rerr != nil {
		log.Printf("Failed to read dropped file %s: %v", uri.Name(), rerr)
		ui.showTransientError(ui.localization.GetText(KeyErrorOpening))
		return
	}
	ui.handleCandidate(file)
}

// readSourceFile loads the file bytes and metadata behind a URI reader
func readSourceFile(reader fyne.URIReadCloser) (*model.SourceFile, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read file bytes: %w", err)
	}

	return &model.SourceFile{
		Name:     reader.URI().Name(),
		Size:     int64(len(data)),
		MIMEType: reader.URI().MimeType(),
		Data:     data,
	}, nil
}

// handleCandidate routes a candidate file through the session state machine
func (ui *RootUI) handleCandidate(file *model.SourceFile) {
	outcome := ui.session.Select(file)

	switch outcome {
	case SelectAccepted:
		log.Printf("Selected %s (%s, %s)", file.Name, file.MIMEType, file.SizeString())
		ui.previewMgr.Show(file)
	case SelectDuplicate:
		log.Printf("Duplicate selection suppressed: %s", file.Name)
	case SelectRejected:
		log.Printf("Rejected input %q: %s", fileName(file), ui.session.ErrorMessage())
	case SelectIgnored:
		log.Printf("Selection ignored, conversion in flight")
	}

	ui.refreshControls()
}

// onConvertClick starts the conversion pipeline for the current selection
func (ui *RootUI) onConvertClick() {
	if err := ui.session.BeginConversion(); err != nil {
		log.Printf("Cannot start conversion: %v", err)
		return
	}
	ui.refreshControls()

	if _, err := ui.convertSvc.StartConversion(ui.session.File(), ui.onConversionDone); err != nil {
		log.Printf("Conversion failed to start: %v", err)
		ui.session.FinishFailure(convert.UserMessage(err))
		ui.refreshControls()
	}
}

// onConversionDone receives the pipeline's terminal outcome on the service
// goroutine and marshals it back onto the UI thread
func (ui *RootUI) onConversionDone(task *model.ConversionTask, data []byte, err error) {
	fyne.Do(func() {
		if err != nil {
			log.Printf("Conversion %s failed: %v", task.ID, err)
			ui.session.FinishFailure(convert.UserMessage(err))
			ui.appendHistory(task)
			ui.refreshControls()
			return
		}
		ui.saveOutput(task, data)
	})
}

// saveOutput writes the encoded PNG, either silently into the configured
// output directory or through a save dialog
func (ui *RootUI) saveOutput(task *model.ConversionTask, data []byte) {
	if ui.settings.GetAskWhereToSave() {
		ui.saveWithDialog(task, data)
		return
	}

	path := filepath.Join(ui.settings.GetOutputDirectory(), task.OutputName)
	path, err := platform.EnsureUniquePath(path)
	if err == nil {
		err = platform.SaveBytes(path, data)
	}
	if err != nil {
		log.Printf("Failed to save %s: %v", task.OutputName, err)
		ui.session.FinishFailure(ui.localization.GetText(KeyErrorSavingFile))
		ui.refreshControls()
		return
	}

	task.OutputPath = path
	ui.finishConversion(task)
}

// saveWithDialog lets the user pick the output location
func (ui *RootUI) saveWithDialog(task *model.ConversionTask, data []byte) {
	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			log.Printf("Save dialog failed: %v", err)
			ui.session.FinishFailure(ui.localization.GetText(KeyErrorSavingFile))
			ui.refreshControls()
			return
		}
		if writer == nil {
			// Cancelled; the selection is kept for another attempt
			ui.session.ReturnToReady()
			ui.refreshControls()
			return
		}
		defer writer.Close()

		if _, werr := writer.Write(data); werr != nil {
			log.Printf("Failed to write %s: %v", task.OutputName, werr)
			ui.session.FinishFailure(ui.localization.GetText(KeyErrorSavingFile))
			ui.refreshControls()
			return
		}

		task.OutputPath = writer.URI().Path()
		ui.finishConversion(task)
	}, ui.window)

	saveDialog.SetFileName(task.OutputName)
	saveDialog.SetFilter(storage.NewExtensionFileFilter(OutputExtensions))
	saveDialog.Show()
}

// finishConversion applies the success transition: full reset of the
// selection and preview, a success notice, and completion side effects
func (ui *RootUI) finishConversion(task *model.ConversionTask) {
	log.Printf("Conversion %s completed: %s (%s, %s)",
		task.ID, task.OutputPath, task.DimensionsString(), model.FormatByteSize(task.OutputSize))

	notice := fmt.Sprintf("%s %s", ui.localization.GetText(KeySavedAs), task.OutputName)
	ui.session.FinishSuccess(notice)
	ui.previewMgr.Clear()
	ui.appendHistory(task)
	ui.refreshControls()

	fyne.CurrentApp().SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(KeyConversionDone),
		Content: task.OutputName,
	})

	if ui.settings.GetAutoRevealOnComplete() && task.OutputPath != "" {
		if err := platform.OpenFileInManager(task.OutputPath); err != nil {
			log.Printf("Failed to reveal %s: %v", task.OutputPath, err)
		}
	}

	ui.hideNoticeLater(notice)
}

// hideNoticeLater clears the success notice after it has been on screen a while
func (ui *RootUI) hideNoticeLater(notice string) {
	go func() {
		time.Sleep(NoticeAutoHide)
		fyne.Do(func() {
			if ui.session.State() == StateEmpty && ui.session.Notice() == notice {
				ui.session.Reset()
				ui.refreshControls()
			}
		})
	}()
}

// onResetClick handles the explicit reset action
func (ui *RootUI) onResetClick() {
	if !ui.session.CanReset() {
		return
	}
	ui.session.Reset()
	ui.previewMgr.Clear()
	ui.refreshControls()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeySettingsSaved)), ui.window.Canvas())
	})
}

// onTaskUpdate handles task updates from the conversion service
func (ui *RootUI) onTaskUpdate(task *model.ConversionTask) {
	fyne.Do(func() {
		switch task.Status {
		case model.TaskStatusDecoding:
			ui.statusLabel.SetText(ui.localization.GetText(KeyDecoding))
		case model.TaskStatusEncoding:
			ui.statusLabel.SetText(ui.localization.GetText(KeyEncoding))
		}
		ui.historyList.Refresh()
	})
}

// onPreviewChange updates the preview region when the preview manager
// shows or clears a file
func (ui *RootUI) onPreviewChange(p *preview.Preview) {
	if p == nil {
		ui.previewImage.Resource = nil
		ui.fileNameLabel.SetText("")
		ui.fileSizeLabel.SetText("")
		ui.previewBox.Hide()
		ui.previewImage.Refresh()
		return
	}

	ui.previewImage.Resource = p.Resource
	ui.fileNameLabel.SetText(p.Name)
	ui.fileSizeLabel.SetText(p.SizeText)
	ui.previewBox.Show()
	ui.previewImage.Refresh()
}

// appendHistory prepends a finished task to the history list
func (ui *RootUI) appendHistory(task *model.ConversionTask) {
	ui.historyTasks = append([]*model.ConversionTask{task}, ui.historyTasks...)
	ui.historyList.Refresh()
}

// onHistoryItemSelected opens the converted file behind a history row with
// the default image viewer
func (ui *RootUI) onHistoryItemSelected(id widget.ListItemID) {
	defer ui.historyList.UnselectAll()

	if id >= len(ui.historyTasks) {
		return
	}
	task := ui.historyTasks[id]
	if task.Status != model.TaskStatusCompleted || task.OutputPath == "" {
		return
	}

	if err := platform.OpenFileWithDefaultApp(task.OutputPath); err != nil {
		log.Printf("Failed to open %s: %v", task.OutputPath, err)
	}
}

// updateHistoryItem renders one row of the conversion history
func (ui *RootUI) updateHistoryItem(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(ui.historyTasks) {
		return
	}
	task := ui.historyTasks[id]

	label, ok := obj.(*widget.Label)
	if !ok {
		return
	}

	if task.Status == model.TaskStatusError {
		label.SetText(IconError + " " + task.SourceName + MiddleDotSeparator + task.LastError)
		return
	}
	label.SetText(IconCheck + " " + task.OutputName +
		MiddleDotSeparator + task.DimensionsString() +
		MiddleDotSeparator + model.FormatByteSize(task.OutputSize))
}

// showTransientError surfaces a host I/O problem without touching the
// session's selection state
func (ui *RootUI) showTransientError(message string) {
	ui.statusLabel.Importance = widget.DangerImportance
	ui.statusLabel.SetText(IconError + " " + message)
}

// refreshControls applies the session state to every control: what is
// enabled, what is visible, and what the status line says
func (ui *RootUI) refreshControls() {
	if ui.session.CanConvert() {
		ui.convertBtn.Enable()
	} else {
		ui.convertBtn.Disable()
	}

	if ui.session.CanReset() {
		ui.resetBtn.Enable()
	} else {
		ui.resetBtn.Disable()
	}

	if ui.session.State() == StateLoading {
		ui.chooseBtn.Disable()
		ui.progressBar.Show()
	} else {
		ui.chooseBtn.Enable()
		ui.progressBar.Hide()
	}

	switch {
	case ui.session.ErrorMessage() != "":
		ui.statusLabel.Importance = widget.DangerImportance
		ui.statusLabel.SetText(IconError + " " + ui.session.ErrorMessage())
	case ui.session.Notice() != "":
		ui.statusLabel.Importance = widget.SuccessImportance
		ui.statusLabel.SetText(IconCheck + " " + ui.session.Notice())
	case ui.session.State() == StateLoading:
		ui.statusLabel.Importance = widget.MediumImportance
		// Text follows the pipeline stage via onTaskUpdate
	default:
		ui.statusLabel.Importance = widget.MediumImportance
		ui.statusLabel.SetText("")
	}

	if ui.session.File() == nil {
		ui.dropHint.Show()
	} else {
		ui.dropHint.Hide()
	}
}

// fileName is a nil-safe accessor for logging
func fileName(f *model.SourceFile) string {
	if f == nil {
		return DashPlaceholder
	}
	return f.Name
}

package convert

import (
	"time"

	"github.com/pngify/pngify/internal/model"
)

// DoneCallback delivers the terminal outcome of a conversion exactly once:
// either the encoded PNG bytes, or a *PipelineError.
type DoneCallback func(task *model.ConversionTask, data []byte, err error)

// Converter defines the interface for the conversion service.
type Converter interface {
	SetUpdateCallback(func(*model.ConversionTask))
	SetDecodeTimeout(timeout time.Duration)
	StartConversion(file *model.SourceFile, onDone DoneCallback) (*model.ConversionTask, error)
	GetTask(taskID string) (*model.ConversionTask, bool)
	GetAllTasks() []*model.ConversionTask
}

package convert

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/pngify/pngify/internal/model"
)

// Pipeline constants
const (
	// DecodeTimeout bounds how long a JPEG decode may run before the
	// conversion fails with ErrTimeout
	DecodeTimeout = 15 * time.Second

	// PNGCompressionLevel is the encoder tuning knob. PNG is lossless, so
	// this trades output size against encode time only.
	PNGCompressionLevel = png.DefaultCompression

	TaskIDPrefix = "convert-"
)

// decodeFunc turns raw JPEG bytes into an in-memory raster
type decodeFunc func(data []byte) (image.Image, error)

// Service handles JPG to PNG conversion operations
type Service struct {
	tasks         map[string]*model.ConversionTask
	tasksMutex    sync.RWMutex
	onUpdate      func(*model.ConversionTask) // callback for UI updates
	decodeTimeout time.Duration
	decode        decodeFunc // replaceable in tests to simulate slow decodes
}

// NewService creates a new conversion service
func NewService() *Service {
	return &Service{
		tasks:         make(map[string]*model.ConversionTask),
		decodeTimeout: DecodeTimeout,
		decode:        decodeJPEG,
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.ConversionTask)) {
	s.onUpdate = callback
}

// SetDecodeTimeout overrides the decode timeout bound
func (s *Service) SetDecodeTimeout(timeout time.Duration) {
	if timeout <= 0 {
		timeout = DecodeTimeout
	}
	s.decodeTimeout = timeout
}

// StartConversion starts converting the given source file in the background.
// Only one conversion may be in flight at a time; the terminal outcome is
// delivered exactly once through onDone.
func (s *Service) StartConversion(file *model.SourceFile, onDone DoneCallback) (*model.ConversionTask, error) {
	if file == nil || len(file.Data) == 0 {
		return nil, fmt.Errorf("no file data to convert")
	}

	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	for _, task := range s.tasks {
		if task.Status.IsActive() {
			return nil, fmt.Errorf("conversion already in progress for file: %s", task.SourceName)
		}
	}

	task := &model.ConversionTask{
		ID:         generateTaskID(),
		SourceName: file.Name,
		OutputName: file.OutputName(),
		SourceSize: file.Size,
		Status:     model.TaskStatusPending,
		StartedAt:  time.Now(),
	}

	s.tasks[task.ID] = task

	// Run the pipeline in background
	go s.runConversion(task, file.Data, onDone)

	return task, nil
}

// GetTask returns a conversion task by ID
func (s *Service) GetTask(taskID string) (*model.ConversionTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[taskID]
	return task, exists
}

// GetAllTasks returns all known tasks, oldest first
func (s *Service) GetAllTasks() []*model.ConversionTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.ConversionTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].StartedAt.Before(tasks[j].StartedAt)
	})
	return tasks
}

// runConversion performs the actual decode, plan and encode steps
func (s *Service) runConversion(task *model.ConversionTask, data []byte, onDone DoneCallback) {
	s.setTaskStatus(task, model.TaskStatusDecoding)

	img, err := s.decodeWithTimeout(data)
	if err != nil {
		s.setTaskError(task, err)
		s.finish(task, nil, err, onDone)
		return
	}

	bounds := img.Bounds()
	srcWidth, srcHeight := bounds.Dx(), bounds.Dy()
	if srcWidth <= 0 {
		s.setTaskError(task, ErrInvalidImage)
		s.finish(task, nil, ErrInvalidImage, onDone)
		return
	}

	targetWidth, targetHeight := PlanDimensions(srcWidth, srcHeight, MaxDimension)

	s.tasksMutex.Lock()
	task.SourceWidth = srcWidth
	task.SourceHeight = srcHeight
	task.TargetWidth = targetWidth
	task.TargetHeight = targetHeight
	task.Status = model.TaskStatusEncoding
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	encoded, err := EncodePNG(img, targetWidth, targetHeight)
	if err != nil {
		s.setTaskError(task, err)
		s.finish(task, nil, err, onDone)
		return
	}

	s.tasksMutex.Lock()
	task.Status = model.TaskStatusCompleted
	task.OutputSize = int64(len(encoded))
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	s.finish(task, encoded, nil, onDone)
}

// decodeWithTimeout races JPEG decoding against the timeout bound. The
// result channel is buffered so a loser arriving after the first settle is
// dropped instead of blocking the decode goroutine.
func (s *Service) decodeWithTimeout(data []byte) (image.Image, error) {
	type decodeResult struct {
		img image.Image
		err error
	}

	results := make(chan decodeResult, 1)
	go func() {
		img, err := s.decode(data)
		results <- decodeResult{img: img, err: err}
	}()

	timer := time.NewTimer(s.decodeTimeout)
	defer timer.Stop()

	select {
	case result := <-results:
		if result.err != nil {
			log.Printf("JPEG decode failed: %v", result.err)
			return nil, ErrDecode
		}
		return result.img, nil
	case <-timer.C:
		log.Printf("JPEG decode exceeded %v timeout", s.decodeTimeout)
		return nil, ErrTimeout
	}
}

// EncodePNG draws src onto an offscreen raster of the given dimensions in a
// single blit and encodes it as PNG. The raster's pixel storage is released
// before returning on both the success and failure paths to bound peak memory.
func EncodePNG(src image.Image, width, height int) ([]byte, error) {
	if src == nil || width < 1 || height < 1 {
		return nil, ErrInvalidImage
	}

	surface := image.NewNRGBA(image.Rect(0, 0, width, height))
	defer func() {
		surface.Pix = nil
		surface.Rect = image.Rectangle{}
	}()

	draw.CatmullRom.Scale(surface, surface.Bounds(), src, src.Bounds(), draw.Src, nil)

	var buf bytes.Buffer
	encoder := &png.Encoder{CompressionLevel: PNGCompressionLevel}
	if err := encoder.Encode(&buf, surface); err != nil {
		log.Printf("PNG encode failed: %v", err)
		return nil, ErrEncode
	}
	if buf.Len() == 0 {
		return nil, ErrEncode
	}

	return buf.Bytes(), nil
}

// decodeJPEG is the production decode path
func decodeJPEG(data []byte) (image.Image, error) {
	return jpeg.Decode(bytes.NewReader(data))
}

// setTaskStatus updates a task's status and notifies the UI
func (s *Service) setTaskStatus(task *model.ConversionTask, status model.TaskStatus) {
	s.tasksMutex.Lock()
	task.Status = status
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// setTaskError sets an error state for a task
func (s *Service) setTaskError(task *model.ConversionTask, err error) {
	s.tasksMutex.Lock()
	task.Status = model.TaskStatusError
	task.LastError = UserMessage(err)
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// finish delivers the terminal outcome through the done callback
func (s *Service) finish(task *model.ConversionTask, data []byte, err error, onDone DoneCallback) {
	if onDone != nil {
		onDone(task, data, err)
	}
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.ConversionTask) {
	if s.onUpdate != nil {
		s.onUpdate(task)
	}
}

// generateTaskID generates a unique task ID using UUID v7 for better uniqueness and time ordering
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}

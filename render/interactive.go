package render

import (
	stdmath "math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mrigankad/offlinerender/core"
	"github.com/mrigankad/offlinerender/params"
	"github.com/mrigankad/offlinerender/renderlog"
	"github.com/mrigankad/offlinerender/rnglib"
	"github.com/mrigankad/offlinerender/scene"
)

// InteractiveSub is the divisor between the interactive renderer's
// downsampled working resolution and the full-resolution stock/result
// images.
const InteractiveSub = 8

// fSmpX/fSmpY are Bayer-ordered sub-pixel positions: rank i gives the
// i'th position to visit so that early passes spread samples as far
// apart across the pixel as possible. Built from the classic 8x8
// ordered-dither matrix, repurposed here for progressive sample
// placement instead of quantisation.
var bayer8 = [InteractiveSub][InteractiveSub]int{
	{0, 32, 8, 40, 2, 34, 10, 42},
	{48, 16, 56, 24, 50, 18, 58, 26},
	{12, 44, 4, 36, 14, 46, 6, 38},
	{60, 28, 52, 20, 62, 30, 54, 22},
	{3, 35, 11, 43, 1, 33, 9, 41},
	{51, 19, 59, 27, 49, 17, 57, 25},
	{15, 47, 7, 39, 13, 45, 5, 37},
	{63, 31, 55, 23, 61, 29, 53, 21},
}

var fSmpX, fSmpY [InteractiveSub * InteractiveSub]int

func init() {
	for y := 0; y < InteractiveSub; y++ {
		for x := 0; x < InteractiveSub; x++ {
			rank := bayer8[y][x]
			fSmpX[rank] = x
			fSmpY[rank] = y
		}
	}
}

// closestPowerOfTwo returns the largest power of two <= n, guarded to
// 1 for n < 1.
func closestPowerOfTwo(n int) int {
	if n < 1 {
		return 1
	}
	p := 1
	for p*2 <= n {
		p *= 2
	}
	return p
}

func fillingCellSize(pass int) int {
	root := int(stdmath.Sqrt(float64(pass)))
	size := (InteractiveSub / 2) / closestPowerOfTwo(root)
	if size < 1 {
		size = 1
	}
	return size
}

func meaningCellSize(pass int) int {
	root := int(stdmath.Sqrt(float64(pass)))
	size := InteractiveSub / closestPowerOfTwo(root)
	if size < 1 {
		size = 1
	}
	return size
}

// subPixelOffset returns pass's jittered sub-pixel offset in [0,1),
// combining the coarse SUB x SUB Bayer rank for the current SUB^2
// block with a finer, second-order Bayer rank for the block index
// itself, so the first and second SUB^2 passes together reach finer
// sub-sample positions than either rank alone.
func subPixelOffset(pass int) (ox, oy float32) {
	block := InteractiveSub * InteractiveSub
	coarse := pass % block
	ox = float32(fSmpX[coarse]) / InteractiveSub
	oy = float32(fSmpY[coarse]) / InteractiveSub

	fine := (pass / block) % block
	ox += float32(fSmpX[fine]) / float32(block*InteractiveSub)
	oy += float32(fSmpY[fine]) / float32(block*InteractiveSub)
	return ox, oy
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// Interactive is the progressive, cancellable renderer. A single
// background goroutine refines a downsampled render of the current
// camera/resolution into a full-resolution "stock" image, then fills
// "result" (the image a UI reads) by averaging stock over shrinking
// cells. One mutex guards all of its mutable state; cancellation is a
// cooperative flag checked at fixed points in the pass loop.
type Interactive struct {
	mu sync.Mutex

	driver *Driver
	scene  *scene.Scene
	params *params.Store
	log    renderlog.Logger

	camera             Camera
	width, height      int
	background         core.Color
	pendingCamera      Camera
	pendingW, pendingH int
	configChanged      bool

	stock  []core.Color
	result []core.Color
	pass   int

	running  bool
	jobID    string
	jobLog   renderlog.Logger
	cancelCh chan struct{}
	doneCh   chan struct{}

	lastPassMS     float64
	recentPassesMS []float64
}

// NewInteractive returns an interactive renderer bound to scn and p.
// It subscribes to p's OnChange hook so that mutating any invalidating
// option cancels the current progressive render.
func NewInteractive(driver *Driver, scn *scene.Scene, p *params.Store, log renderlog.Logger) *Interactive {
	if log == nil {
		log = renderlog.NewNopLogger()
	}
	it := &Interactive{driver: driver, scene: scn, params: p, log: log}
	p.OnChange(func(o params.Option) {
		if o.Invalidating() {
			it.Cancel()
		}
	})
	return it
}

// Begin starts the background refinement loop for camera cam at
// width x height, clearing to background. A no-op if already running.
func (it *Interactive) Begin(cam Camera, width, height int, background core.Color) {
	it.mu.Lock()
	if it.running {
		it.mu.Unlock()
		return
	}
	it.camera = cam
	it.width, it.height = width, height
	it.background = background
	it.pass = 0
	it.stock = nil
	it.result = backgroundPixels(width, height, background)
	it.running = true
	it.jobID = uuid.NewString()
	jobLog := it.log.WithJob(it.jobID)
	it.jobLog = jobLog
	it.configChanged = false
	it.cancelCh = make(chan struct{})
	it.doneCh = make(chan struct{})
	it.mu.Unlock()

	jobLog.Infof("interactive render starting: %dx%d", width, height)

	go it.run()
}

// SetCamera updates the camera/resolution the next pass will pick up,
// flagging the running loop to discard stock/result and restart at
// pass 0.
func (it *Interactive) SetCamera(cam Camera, width, height int) {
	it.mu.Lock()
	it.pendingCamera = cam
	it.pendingW, it.pendingH = width, height
	it.configChanged = true
	it.mu.Unlock()
}

// Cancel stops the background loop, clears stock/result to the
// cancellation background, and joins the worker before returning.
func (it *Interactive) Cancel() {
	it.mu.Lock()
	if !it.running {
		it.mu.Unlock()
		return
	}
	jobLog := it.jobLog
	cancelCh := it.cancelCh
	doneCh := it.doneCh
	it.mu.Unlock()

	select {
	case <-cancelCh:
	default:
		close(cancelCh)
	}
	<-doneCh

	jobLog.Infof("interactive render cancelled")
}

// Lock/Unlock expose the interactive renderer's mutex directly.
// Result, Pass, FPS, SmoothedFPS and Cancel take the same mutex
// themselves, so none of them may be called while Lock is held; nor
// may an invalidating params option be changed then, since the
// OnChange hook installed by NewInteractive calls Cancel.
func (it *Interactive) Lock()   { it.mu.Lock() }
func (it *Interactive) Unlock() { it.mu.Unlock() }

// Result returns a snapshot of the image currently shown to the user,
// taken under the renderer's mutex.
func (it *Interactive) Result() *Image {
	it.mu.Lock()
	defer it.mu.Unlock()
	if it.result == nil {
		return nil
	}
	img := &Image{Width: it.width, Height: it.height, Pixels: append([]core.Color(nil), it.result...)}
	return img
}

// Pass returns the current monotonic pass counter.
func (it *Interactive) Pass() int {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.pass
}

// FPS returns 1000/ms(last pass), the instantaneous rate of the most
// recent pass.
func (it *Interactive) FPS() float64 {
	it.mu.Lock()
	defer it.mu.Unlock()
	if it.lastPassMS <= 0 {
		return 0
	}
	return 1000 / it.lastPassMS
}

// SmoothedFPS averages the last 16 pass durations before inverting,
// for callers that want a steadier readout than FPS's instantaneous
// value.
func (it *Interactive) SmoothedFPS() float64 {
	it.mu.Lock()
	defer it.mu.Unlock()
	if len(it.recentPassesMS) == 0 {
		return 0
	}
	var sum float64
	for _, v := range it.recentPassesMS {
		sum += v
	}
	avg := sum / float64(len(it.recentPassesMS))
	if avg <= 0 {
		return 0
	}
	return 1000 / avg
}

func (it *Interactive) run() {
	defer close(it.doneCh)
	for {
		select {
		case <-it.cancelCh:
			it.mu.Lock()
			it.stock = nil
			it.result = backgroundPixels(it.width, it.height, it.background)
			it.pass = 0
			it.running = false
			it.mu.Unlock()
			return
		default:
		}

		start := time.Now()
		stopped := it.runPass()
		elapsed := float64(time.Since(start).Milliseconds())

		it.mu.Lock()
		it.lastPassMS = elapsed
		it.recentPassesMS = append(it.recentPassesMS, elapsed)
		if len(it.recentPassesMS) > 16 {
			it.recentPassesMS = it.recentPassesMS[1:]
		}
		it.mu.Unlock()

		if stopped {
			return
		}
	}
}

// runPass executes one refinement pass and reports whether the worker
// should stop (cancelled mid-pass).
func (it *Interactive) runPass() bool {
	it.mu.Lock()
	if it.configChanged {
		it.camera = it.pendingCamera
		it.width, it.height = it.pendingW, it.pendingH
		it.stock = nil
		it.result = backgroundPixels(it.width, it.height, it.background)
		it.pass = 0
		it.configChanged = false
	}
	cam := it.camera
	width, height := it.width, it.height
	pass := it.pass
	scn := it.scene
	p := it.params
	seed := it.driver.seed
	it.mu.Unlock()

	if width <= 0 || height <= 0 || scn == nil {
		return false
	}

	tree := it.driver.ensureTree(scn, p)
	tp := tracerParams(p)

	sw, sh := ceilDiv(width, InteractiveSub), ceilDiv(height, InteractiveSub)
	ox, oy := subPixelOffset(pass)

	down := make([]core.Color, sw*sh)
	for sj := 0; sj < sh; sj++ {
		for si := 0; si < sw; si++ {
			px := si*InteractiveSub + int(ox*InteractiveSub)
			py := sj*InteractiveSub + int(oy*InteractiveSub)
			if px >= width {
				px = width - 1
			}
			if py >= height {
				py = height - 1
			}
			rng := rnglib.ForPixel(seed, px, py, pass)
			ps := shadePixel(tree, scn, p, tp, cam, width, height, px, py, 0, 0, it.background, rng)
			down[sj*sw+si] = ps.Color.Clamp01()
		}
	}

	// Cooperative cancellation checkpoint: after rasterisation, before
	// accumulating into stock.
	select {
	case <-it.cancelCh:
		it.mu.Lock()
		it.stock = nil
		it.result = backgroundPixels(width, height, it.background)
		it.pass = 0
		it.running = false
		it.mu.Unlock()
		return true
	default:
	}

	it.mu.Lock()
	defer it.mu.Unlock()

	if it.stock == nil {
		it.stock = make([]core.Color, width*height)
	}

	block := InteractiveSub * InteractiveSub
	if pass < block {
		splatter(it.stock, width, height, down, sw, sh, fillingCellSize(pass))
	} else {
		wholePass := (pass + 1) / block
		weight := 1 / float32(wholePass+1)
		runningAverage(it.stock, width, height, down, sw, sh, weight)
	}

	it.result = fillResult(it.stock, width, height, meaningCellSize(pass+1))
	it.pass++
	return false
}

func backgroundPixels(width, height int, background core.Color) []core.Color {
	if width <= 0 || height <= 0 {
		return nil
	}
	px := make([]core.Color, width*height)
	for i := range px {
		px[i] = background
	}
	return px
}

// splatter overwrites a cell x cell square of stock per downsampled
// pixel, the coarse-to-fine fill of the image-build phase.
func splatter(stock []core.Color, width, height int, down []core.Color, sw, sh, cell int) {
	for sj := 0; sj < sh; sj++ {
		for si := 0; si < sw; si++ {
			c := down[sj*sw+si]
			x0, y0 := si*cell, sj*cell
			for y := y0; y < y0+cell && y < height; y++ {
				for x := x0; x < x0+cell && x < width; x++ {
					stock[y*width+x] = c
				}
			}
		}
	}
}

// runningAverage blends each downsampled pixel into its
// full-resolution SUB x SUB block of stock with the given weight, the
// anti-aliasing phase once the image-build passes are exhausted.
func runningAverage(stock []core.Color, width, height int, down []core.Color, sw, sh int, weight float32) {
	for sj := 0; sj < sh; sj++ {
		for si := 0; si < sw; si++ {
			c := down[sj*sw+si]
			x0, y0 := si*InteractiveSub, sj*InteractiveSub
			for y := y0; y < y0+InteractiveSub && y < height; y++ {
				for x := x0; x < x0+InteractiveSub && x < width; x++ {
					idx := y*width + x
					stock[idx] = stock[idx].Scale(1 - weight).Add(c.Scale(weight))
				}
			}
		}
	}
}

// fillResult averages stock over cell x cell blocks to produce the
// image shown to the user.
func fillResult(stock []core.Color, width, height, cell int) []core.Color {
	result := make([]core.Color, width*height)
	for y0 := 0; y0 < height; y0 += cell {
		for x0 := 0; x0 < width; x0 += cell {
			sum := core.ColorBlack
			count := 0
			for y := y0; y < y0+cell && y < height; y++ {
				for x := x0; x < x0+cell && x < width; x++ {
					sum = sum.Add(stock[y*width+x])
					count++
				}
			}
			if count == 0 {
				continue
			}
			avg := sum.Scale(1 / float32(count))
			for y := y0; y < y0+cell && y < height; y++ {
				for x := x0; x < x0+cell && x < width; x++ {
					result[y*width+x] = avg
				}
			}
		}
	}
	return result
}

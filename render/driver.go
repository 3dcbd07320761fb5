// Package render contains the anti-aliasing multi-sample batch driver
// and the progressive cancellable interactive renderer. Both sit on
// top of kdtree, tracer, radiance, and dof, and share the same
// per-pixel shading logic (shading.go).
package render

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mrigankad/offlinerender/core"
	"github.com/mrigankad/offlinerender/dof"
	"github.com/mrigankad/offlinerender/kdtree"
	"github.com/mrigankad/offlinerender/params"
	"github.com/mrigankad/offlinerender/rendererror"
	"github.com/mrigankad/offlinerender/renderlog"
	"github.com/mrigankad/offlinerender/rnglib"
	"github.com/mrigankad/offlinerender/scene"
)

// dofSigma is the depth-of-field strength the batch driver hands the
// filter; a moderate default that keeps the focal plane crisp without
// washing out the background entirely.
const dofSigma = 0.2

// Driver is the batch render driver: it owns the k-d tree built lazily
// from a scene and dispatches pixel work across threadCount workers
// per sample.
type Driver struct {
	mu   sync.Mutex
	tree *kdtree.Tree
	seed int64
}

// NewDriver returns a driver with no tree built yet. seed fixes the
// base seed rnglib.ForPixel mixes per pixel/sample, so a render is
// reproducible for a fixed seed even though its Monte-Carlo estimators
// (path tracing, soft shadows, ambient occlusion) are not otherwise
// deterministic.
func NewDriver(seed int64) *Driver {
	return &Driver{seed: seed}
}

// ensureTree builds the k-d tree if the store reports it isn't built
// yet, then sets the store's kdTreeBuilt flag.
func (d *Driver) ensureTree(scn *scene.Scene, p *params.Store) *kdtree.Tree {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.tree == nil || !p.KdTreeBuilt() {
		d.tree = kdtree.Build(scn.BuildEntries())
		p.SetKdTreeBuilt(true)
	}
	return d.tree
}

// Render performs a full anti-aliased batch render of scn as seen by
// cam into a width x height image. progress may be nil. ctx
// cancellation aborts between samples or mid-sample at a worker's next
// column.
func (d *Driver) Render(ctx context.Context, scn *scene.Scene, p *params.Store, cam Camera, width, height int, background core.Color, log renderlog.Logger, progress *Progress) (*Image, *dof.DistanceMap, error) {
	if scn == nil {
		return nil, nil, rendererror.Misconfigured("nil scene")
	}
	if width <= 0 || height <= 0 {
		return nil, nil, rendererror.Misconfigured("invalid resolution %dx%d", width, height)
	}
	if log == nil {
		log = renderlog.NewNopLogger()
	}

	jobID := uuid.NewString()
	log = log.WithJob(jobID)
	log.Infof("render starting: %dx%d", width, height)

	tree := d.ensureTree(scn, p)
	tp := tracerParams(p)

	aa := uint(1)
	if p.AntiAliasing() && !p.Interactive() {
		aa = p.AntiAliasingFactor()
	}
	samples := int(aa * aa)
	if samples < 1 {
		samples = 1
	}

	threadCount := p.ThreadCount()
	if threadCount < 1 {
		threadCount = 1
	}

	depth := dof.NewDistanceMap(width, height)
	accum := make([]core.Color, width*height)

	for k := 0; k < samples; k++ {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		ox := float32(k%int(aa)) / float32(aa)
		oy := float32(k/int(aa)) / float32(aa)

		sample := NewImage(width, height)

		g, gctx := errgroup.WithContext(ctx)
		for worker := 0; worker < threadCount; worker++ {
			worker := worker
			g.Go(func() error {
				for i := worker; i < width; i += threadCount {
					select {
					case <-gctx.Done():
						return gctx.Err()
					default:
					}
					for j := 0; j < height; j++ {
						rng := rnglib.ForPixel(d.seed, i, j, k)
						ps := shadePixel(tree, scn, p, tp, cam, width, height, i, j, ox, oy, background, rng)
						sample.Set(i, j, ps.Color.Clamp01())
						if ps.Hit {
							depth.Set(i, j, ps.T)
						}
						progress.add(1)
					}
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, nil, err
		}

		// After each sample, auto-focus and apply the DoF filter iff
		// filter is on and interactive rendering is not (the
		// interactive renderer never runs the filter; its own
		// progressive refinement is its anti-aliasing strategy).
		if p.Filter() && !p.Interactive() {
			focal := depth.AdjustFocalPlane()
			sample.Pixels = dof.Filter(sample.Pixels, width, height, depth, focal, dofSigma)
		}

		for idx, c := range sample.Pixels {
			accum[idx] = accum[idx].Add(c)
		}
	}

	final := NewImage(width, height)
	inv := 1 / float32(samples)
	for idx, c := range accum {
		final.Pixels[idx] = c.Scale(inv).Clamp01()
	}

	log.Infof("render finished")
	return final, depth, nil
}

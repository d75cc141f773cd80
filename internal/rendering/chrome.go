package rendering

import (
	"context"
	"errors"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"golang.org/x/sync/semaphore"
)

// imageWaitBudget bounds how long a capture waits for page images to settle.
// A slow or dead image host must not stall the whole render, so on timeout
// the capture proceeds with whatever has loaded.
const imageWaitBudget = 5 * time.Second

const imagesSettledJS = `Array.from(document.images).every(img => img.complete)`

// ChromeEngine renders pages through a headless Chrome process. Each capture
// launches a fresh browser so captures never share state, and a semaphore
// bounds how many browsers run at once.
type ChromeEngine struct {
	execPath string
	sem      *semaphore.Weighted
}

// NewChromeEngine builds an engine. execPath overrides browser discovery when
// non-empty (the CHROME_PATH deployment case); maxConcurrent bounds parallel
// browser launches and is clamped to at least 1.
func NewChromeEngine(execPath string, maxConcurrent int64) *ChromeEngine {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &ChromeEngine{
		execPath: execPath,
		sem:      semaphore.NewWeighted(maxConcurrent),
	}
}

func (e *ChromeEngine) CapturePNG(ctx context.Context, html string, vp Viewport) ([]byte, error) {
	if err := e.sem.Acquire(ctx, 1); err != nil {
		return nil, &EngineError{Stage: "launch", Cause: err}
	}
	defer e.sem.Release(1)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if e.execPath != "" {
		opts = append(opts, chromedp.ExecPath(e.execPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	defer cancelTab()

	if err := chromedp.Run(tabCtx); err != nil {
		return nil, &EngineError{Stage: "launch", Cause: err}
	}

	var buf []byte
	err := chromedp.Run(tabCtx,
		chromedp.EmulateViewport(vp.Width, vp.Height, chromedp.EmulateScale(vp.Scale)),
		setDocumentContent(html),
		waitForImages(imageWaitBudget),
		chromedp.FullScreenshot(&buf, 100),
	)
	if err != nil {
		return nil, &EngineError{Stage: "capture", Cause: err}
	}
	return buf, nil
}

// setDocumentContent injects the page markup directly into the main frame,
// avoiding any navigation or temp-file round trip.
func setDocumentContent(html string) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		tree, err := page.GetFrameTree().Do(ctx)
		if err != nil {
			return err
		}
		return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
	})
}

// waitForImages polls until every <img> has finished loading or erroring,
// giving up after the budget without failing the capture.
func waitForImages(budget time.Duration) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		var settled bool
		err := chromedp.Poll(imagesSettledJS, &settled, chromedp.WithPollingTimeout(budget)).Do(ctx)
		if errors.Is(err, chromedp.ErrPollingTimeout) {
			return nil
		}
		return err
	})
}

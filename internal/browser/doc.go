// Package browser owns the headless Chrome session used to render pages.
//
// The session is a shared, stateful resource: one browser, driven strictly
// sequentially by the pipeline's single worker. Headless Chrome accumulates
// memory and can wedge after failed loads, so the session supports an
// explicit Recycle operation (full teardown and recreation) in addition to
// scoped Close on every exit path.
//
// Design decision: We drive Chrome over the DevTools protocol via chromedp
// rather than fetching with net/http because the target sites build their
// content with JavaScript; the raw HTTP response body often contains no
// prose at all. The renderer waits a fixed interval after navigation before
// reading the DOM ("wait and re-read"), with no stronger guarantee.
package browser

// Package dispatch turns page form state into backend requests and maps
// each result to a user-visible notification.
//
// # Dispatcher
//
// A Dispatcher owns one page and one backend:
//
//	d := dispatch.New(settings, backend.New(client), page, func(n dispatch.Notice) {
//	    fmt.Println(n.Message)
//	})
//
//	d.StartDownload(ctx)      // reads url, format and subtitle from the page
//	d.StartTranscription(ctx) // uploads the chosen file
//	d.GetVideoInfo(ctx)       // looks up formats and renders them
//
// The Submit* and Fetch* methods do the same work from explicit arguments
// without touching the page.
//
// # Outcomes
//
// Every operation resolves to a model.Outcome:
//   - Validation: rejected before any network call
//   - Backend: non-2xx response, the backend message is shown verbatim
//   - Transport: network or decoding failure, a generic message is shown
//     and the cause goes to the diagnostics logger
//
// There are no retries. A failed action must be triggered again.
//
// # Loading State
//
// GetVideoInfo disables the info button and swaps its label for the
// duration of the call. The previous label and disabled flag are restored
// on every exit path.
package dispatch

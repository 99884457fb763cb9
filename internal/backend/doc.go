// Package backend talks to the media backend's three endpoints and turns
// their responses into model values or typed errors.
//
// # Endpoints
//
//	POST /api/download    {url, options: {format_id, subtitle}} or {url}
//	POST /api/video-info  {url}
//	POST /api/transcribe  multipart field "file"
//
// # Usage
//
//	api := backend.New(http.NewClient(baseURL, 0))
//	info, err := api.VideoInfo(ctx, "https://www.youtube.com/watch?v=...")
//	if err != nil {
//	    var be *model.BackendError
//	    if errors.As(err, &be) {
//	        fmt.Println(be.Message)
//	    }
//	}
//
// Every error is one of *model.BackendError or *model.TransportError.
// Validation is the caller's job; this package sends what it is given.
package backend

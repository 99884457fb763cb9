// Package audio reads metadata from local audio files.
//
// It is used to label a file chosen for transcription with its ID3 title
// and artist instead of the bare file name:
//
//	label := audio.Describe("/path/to/lecture.mp3")
//	// "Prof. Smith - Lecture 1" or "lecture.mp3"
package audio

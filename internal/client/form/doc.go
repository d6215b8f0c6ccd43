// Package form implements the interactive terminal form of caesarlite.
//
// The form has two tabs. The Text tab takes a shift and a block of text and
// shows the encrypted, decrypted or brute-forced result. The File tab takes a
// shift and an input / output path pair; the output path is suggested from the
// input path when left empty.
//
// Keys
//
//	tab, shift+tab   move focus between fields
//	ctrl+t           switch tab
//	ctrl+e           encrypt
//	ctrl+d           decrypt
//	ctrl+b           brute force (Text tab)
//	esc, ctrl+c      quit
//
// Validation errors are shown in the status line; the form never exits on them.
package form

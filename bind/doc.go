// Package bind maps raw keyboard, mouse and game controller input to small
// integer actions.
//
// A Binder owns the binding tables and the per-frame transition state.
// The host loop feeds it platform events through HandleEvent, queries
// Pressed and Released for the actions it cares about, then calls
// ResetInputs before the next frame.
//
// Bindings are set through the Map* calls or loaded from a bind file,
// one command per line:
//
//	scancode A jump
//	keycode SPACE jump
//	mbutton LEFT fire
//	wheelup zoom_in
//	cbutton A jump
//	caxis LEFTXNEG move_left
//	unmap_scancode A
//
// Action names used by a bind file must be registered with SetActionString
// before it is read.
package bind

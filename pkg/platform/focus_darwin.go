//go:build darwin

package platform

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa
#import <Cocoa/Cocoa.h>

static int appIsActive(void) {
    return [NSApp isActive] ? 1 : 0;
}

static void raiseApp(void) {
    if ([NSApp isHidden]) {
        [NSApp unhide:nil];
    }
    [NSApp activateIgnoringOtherApps:YES];
}
*/
import "C"

// IsAppActive reports whether the countdown is the frontmost application
func IsAppActive() bool {
	return C.appIsActive() == 1
}

// ActivateApp unhides the app if needed and brings it in front of other apps
func ActivateApp() {
	C.raiseApp()
}

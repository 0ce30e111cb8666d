// Package display presents rendered frames in an OpenGL window.
package display

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/MrTraan/rtv1/log"
	"github.com/MrTraan/rtv1/renderer"
)

func init() {
	// glfw event handling must run on the main thread.
	runtime.LockOSThread()
}

// A Window displays a frame buffer by blitting it through a texture backed
// framebuffer object.
type Window struct {
	logger log.Logger

	// opengl handles
	window    *glfw.Window
	fbTexture uint32
	texFbo    uint32

	frameW int32
	frameH int32

	// Set when the window contents must be redrawn.
	dirty bool
}

// Open a non-resizable window matching the frame dimensions.
func Open(title string, frameW, frameH uint32) (*Window, error) {
	var err error
	if err = glfw.Init(); err != nil {
		return nil, fmt.Errorf("display: failed to initialize glfw: %s", err.Error())
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	w := &Window{
		logger: log.New("display"),
		frameW: int32(frameW),
		frameH: int32(frameH),
	}

	w.window, err = glfw.CreateWindow(int(frameW), int(frameH), title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("display: could not create opengl window: %s", err.Error())
	}
	w.window.MakeContextCurrent()

	if err = gl.Init(); err != nil {
		w.Close()
		return nil, fmt.Errorf("display: could not init opengl: %s", err.Error())
	}

	// Setup texture for image data
	gl.GenTextures(1, &w.fbTexture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, w.fbTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, w.frameW, w.frameH, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)

	// Attach texture to FBO
	gl.GenFramebuffers(1, &w.texFbo)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, w.texFbo)
	gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, w.fbTexture, 0)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)

	// Bind event callbacks
	w.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	w.window.SetKeyCallback(w.onKeyEvent)
	w.window.SetRefreshCallback(func(*glfw.Window) { w.dirty = true })

	w.logger.Infof("opened %dx%d window", frameW, frameH)
	return w, nil
}

// Close the window and release opengl resources.
func (w *Window) Close() {
	if w.window != nil {
		if w.texFbo != 0 {
			gl.DeleteFramebuffers(1, &w.texFbo)
		}
		if w.fbTexture != 0 {
			gl.DeleteTextures(1, &w.fbTexture)
		}
		w.window.Destroy()
		w.window = nil
	}
	glfw.Terminate()
}

// Display the frame buffer until the window is closed or Escape is pressed.
func (w *Window) Run(fb *renderer.FrameBuffer) error {
	if int32(fb.W) != w.frameW || int32(fb.H) != w.frameH {
		return fmt.Errorf("display: frame buffer is %dx%d; window expects %dx%d", fb.W, fb.H, w.frameW, w.frameH)
	}

	w.dirty = true
	for !w.window.ShouldClose() {
		if w.dirty {
			w.present(fb)
			w.dirty = false
		}

		glfw.WaitEvents()
	}

	return nil
}

// Upload frame buffer to the texture and blit it to the window. Row 0 of
// the frame buffer is the bottom row which matches the opengl texture
// origin.
func (w *Window) present(fb *renderer.FrameBuffer) {
	gl.BindTexture(gl.TEXTURE_2D, w.fbTexture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, w.frameW, w.frameH, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(fb.Pix))

	// Copy texture data to framebuffer
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, w.texFbo)
	gl.BlitFramebuffer(0, 0, w.frameW, w.frameH, 0, 0, w.frameW, w.frameH, gl.COLOR_BUFFER_BIT, gl.NEAREST)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)

	w.window.SwapBuffers()
}

func (w *Window) onKeyEvent(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Press && key == glfw.KeyEscape {
		win.SetShouldClose(true)
	}
}

package imapp

import "github.com/AllenDang/cimgui-go/imgui"

// applyDefaultStyle installs the fixed default theme: the dark palette
// plus the spacing and rounding constants below. Callers that want a
// different look mutate [App.Style] after construction.
func applyDefaultStyle() {
	imgui.StyleColorsDark()

	style := imgui.CurrentStyle()
	style.SetAlpha(1.0)
	style.SetDisabledAlpha(0.6)
	style.SetWindowPadding(imgui.NewVec2(8, 8))
	style.SetWindowRounding(0)
	style.SetWindowBorderSize(1)
	style.SetWindowMinSize(imgui.NewVec2(32, 32))
	style.SetWindowTitleAlign(imgui.NewVec2(0, 0.5))
	style.SetWindowMenuButtonPosition(imgui.DirLeft)
	style.SetChildRounding(0)
	style.SetChildBorderSize(1)
	style.SetPopupRounding(0)
	style.SetPopupBorderSize(1)
	style.SetFramePadding(imgui.NewVec2(4, 3))
	style.SetFrameRounding(0)
	style.SetFrameBorderSize(0)
	style.SetItemSpacing(imgui.NewVec2(8, 4))
	style.SetItemInnerSpacing(imgui.NewVec2(4, 4))
	style.SetCellPadding(imgui.NewVec2(4, 2))
	style.SetIndentSpacing(21)
	style.SetColumnsMinSpacing(6)
	style.SetScrollbarSize(14)
	style.SetScrollbarRounding(3)
	style.SetGrabMinSize(10)
	style.SetGrabRounding(0)
	style.SetTabRounding(3)
	style.SetTabBorderSize(0)
	style.SetColorButtonPosition(imgui.DirRight)
	style.SetButtonTextAlign(imgui.NewVec2(0.5, 0.5))
	style.SetSelectableTextAlign(imgui.NewVec2(0, 0))
}

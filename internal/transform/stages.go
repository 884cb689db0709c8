package transform

// PerspectiveDivide divides x,y,z by w and stores 1/w in w.
func PerspectiveDivide(v Clip) NDC {
	return NDC{v[0] / v[3], v[1] / v[3], v[2] / v[3], 1 / v[3]}
}

// NDCToScreenUnit maps x,y from [-1,1] to [0,1]. There is no y flip:
// row 0 of the device frame is the bottom of the view.
func NDCToScreenUnit(v NDC) ScreenUnit {
	return ScreenUnit{v[0]*0.5 + 0.5, v[1]*0.5 + 0.5, v[2], v[3]}
}

// ScreenUnitToDevice scales x by width and y by height.
func ScreenUnitToDevice(v ScreenUnit, width, height float32) Device {
	return Device{v[0] * width, v[1] * height, v[2], v[3]}
}

// WarpedUnitToDevice is ScreenUnitToDevice for the warped frame.
func WarpedUnitToDevice(v WarpedUnit, width, height float32) WarpedDevice {
	return WarpedDevice{v[0] * width, v[1] * height, v[2], v[3]}
}

package constant

// DeviceType categorises the registered device platform.
type DeviceType string

const (
	DeviceAndroid DeviceType = "android"
	DeviceIOS     DeviceType = "ios"
	DeviceIPad    DeviceType = "ipad"
	DeviceMac     DeviceType = "mac"
	DeviceTab     DeviceType = "tab"
	DeviceWeb     DeviceType = "web"
)

// Valid reports whether the device type is one of the supported platforms.
func (d DeviceType) Valid() bool {
	switch d {
	case DeviceAndroid, DeviceIOS, DeviceIPad, DeviceMac, DeviceTab, DeviceWeb:
		return true
	}
	return false
}

// DeviceStatus represents the push-registration state of a device.
type DeviceStatus string

const (
	DeviceActive  DeviceStatus = "active"
	DeviceBlocked DeviceStatus = "blocked"
	DeviceLogout  DeviceStatus = "logout"
)

// Valid reports whether the device status is a known state.
func (s DeviceStatus) Valid() bool {
	switch s {
	case DeviceActive, DeviceBlocked, DeviceLogout:
		return true
	}
	return false
}

package entity

// ShareChannel identifies the social channel a device shared through.
type ShareChannel string

const (
	ShareChannelTwitter  ShareChannel = "twitter"
	ShareChannelFacebook ShareChannel = "facebook"
)

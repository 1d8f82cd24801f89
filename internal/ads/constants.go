package ads

// AdSenseScriptURL is the loader script clients inject, with the publisher id appended
const AdSenseScriptURL = "https://pagead2.googlesyndication.com/pagead/js/adsbygoogle.js?client="

// Log messages
const (
	LogMsgAdsInitialized = "Ads initialized"
	LogMsgAdsAlreadyInit = "Ads already initialized"
	LogMsgAdUnitCreated  = "Ad unit created"
	LogMsgAdUnitRemoved  = "Ad unit removed"
	LogMsgAdsTornDown    = "Ads torn down"
	LogMsgAdsDisabled    = "Ads disabled, no publisher id configured"
)

// Error contexts
const (
	ErrContextParsePlacements  = "failed to parse ad placements"
	ErrContextInvalidPlacement = "invalid ad placement"
)

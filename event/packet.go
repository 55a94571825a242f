package event

// Packet is a group of 1 to 3 site events sharing a single arrival point:
// a lone site, or a point site together with its adjacent segment site
// endpoints, merged by SiteQueue.PopPacket.
type Packet []SiteEvent

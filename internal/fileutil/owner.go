package fileutil

import (
	"io/fs"
	"os/user"
)

// ownerCache memoizes uid/gid name lookups for one invocation.
type ownerCache struct {
	users  map[string]string
	groups map[string]string
}

func newOwnerCache() *ownerCache {
	return &ownerCache{
		users:  make(map[string]string),
		groups: make(map[string]string),
	}
}

// resolve returns the owner and group names for info. Unknown ids fall back
// to their numeric form; platforms without ownership data return empty strings.
func (c *ownerCache) resolve(info fs.FileInfo) (string, string) {
	uid, gid, ok := ownerIDs(info)
	if !ok {
		return "", ""
	}
	return c.user(uid), c.group(gid)
}

func (c *ownerCache) user(uid string) string {
	if name, ok := c.users[uid]; ok {
		return name
	}
	name := uid
	if u, err := user.LookupId(uid); err == nil && u.Username != "" {
		name = u.Username
	}
	c.users[uid] = name
	return name
}

func (c *ownerCache) group(gid string) string {
	if name, ok := c.groups[gid]; ok {
		return name
	}
	name := gid
	if g, err := user.LookupGroupId(gid); err == nil && g.Name != "" {
		name = g.Name
	}
	c.groups[gid] = name
	return name
}

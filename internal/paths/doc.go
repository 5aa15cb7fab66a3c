// Package paths resolves the filesystem locations used by backupseeker.
//
// Application-owned files (the persisted profile configuration, descriptor
// catalogs, the icon cache) live under the XDG base directories. The backup
// root is a separate concept owned by the profile store: it defaults to a
// backups folder under the current working directory and can be pinned to a
// fixed path by the user.
package paths

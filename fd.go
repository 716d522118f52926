package zbus

// resolveFd looks up the fd index read off the wire in the Decoder's FD
// table. Missing table or an out-of-range index is UnknownFdError. FDs are
// resolved by index only: this package never closes, duplicates, or
// otherwise manages the underlying OS handles it hands back.
func (d *Decoder) resolveFd(index uint32) (int, error) {
	if d.fds == nil || int(index) >= len(d.fds) {
		return 0, &UnknownFdError{Index: index}
	}
	return d.fds[index], nil
}

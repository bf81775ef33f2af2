// File: sock/doc.go
// Package sock
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Socket factory and socket handles. The factory normalizes declarative
// creation options into api.Params and dispatches to the resolved channel;
// it never opens a socket itself. Base is the capability mixin every
// concrete handle embeds; TCP, TCPServer and UDP are the local concrete
// variants a channel returns.

package sock

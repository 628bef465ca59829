// Package platform resolves the host platform class once per invocation and
// derives every platform-dependent value (artifact suffix, install action)
// from that single resolved value.
package platform

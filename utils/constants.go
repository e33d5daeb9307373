// File: utils/constants.go
package utils

// FallbackReply is the fixed reply returned whenever a chat request cannot be
// processed. The widget renders it as a normal assistant message.
const FallbackReply = "I apologize, but I encountered an error. Please try again."

// OperatingHours is echoed in the help reply.
const OperatingHours = "9:00 AM - 6:00 PM daily"

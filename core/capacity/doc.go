package capacity

// Package capacity derives utilization, imbalance and cost figures from a
// post-scheduling store, including the overtime-versus-hiring break-even
// model. It only reads the store; every call returns new values.

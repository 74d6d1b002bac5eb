package path

// Native is the path grammar of the running platform.
const Native = Windows

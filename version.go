package lockgrid

// Version is the current release of the lockgrid module and CLI.
const Version = "0.3.0"

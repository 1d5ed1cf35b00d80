package asset

// DefaultConfigYAML is written by -write-config as a starting point for user configs
const DefaultConfigYAML = `# flatsouls configuration

window:
  width: 1280
  height: 720
  title: flatsouls
  fps: 60

# planar: box of four walls, top-down 2D movement
# spatial: same box with a floor, gravity and jumping
scene:
  kind: planar

player:
  acceleration: 15
  max_speed: 3
  skid: 7
  gravity: 20
  jump_power: 10

render:
  sprite_capacity: 9216
  text_capacity: 1024
  font_size: 32
  camera_height: 5

store:
  capacity: 256

# empty paths use the built-in placeholder sheet and Go Mono
assets:
  sprite_sheet: ""
  font: ""

# button: [keys]; named keys are up down left right enter esc backspace tab space
keys:
  up: [up, w]
  down: [down, s]
  left: [left, a]
  right: [right, d]
  a: [t, space]
  b: [y]
  x: [r]
  y: [e]
  start: [enter, esc, q]
  select: [tab, backspace]

log:
  level: info
  file: ""

audio:
  enabled: true
`

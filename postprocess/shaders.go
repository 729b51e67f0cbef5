// SPDX-License-Identifier: GPL-2.0-or-later

package postprocess

import "goscene/gpu"

var shader = &gpu.ShaderSource{
	Name: "postprocess",
	Vertex: `
#version 330 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoords;
out vec2 TexCoords;

void main() {
  TexCoords = aTexCoords;
  gl_Position = vec4(aPos.x, aPos.y, 0.0, 1.0);
}
`,
	Fragment: `
#version 330 core
in vec2 TexCoords;
out vec4 FragColor;
uniform sampler2D screenTexture;
uniform int mode;

void main() {
  vec3 col = texture(screenTexture, TexCoords).rgb;
  if (mode == 1) {
    vec3 sepia;
    sepia.r = dot(col, vec3(0.393, 0.769, 0.189));
    sepia.g = dot(col, vec3(0.349, 0.686, 0.168));
    sepia.b = dot(col, vec3(0.272, 0.534, 0.131));
    FragColor = vec4(sepia, 1.0);
  } else if (mode == 2) {
    float gray = dot(col, vec3(0.299, 0.587, 0.114));
    FragColor = vec4(vec3(0.0, gray, 0.0) * 1.5, 1.0);
  } else {
    FragColor = vec4(col, 1.0);
  }
}
`,
}

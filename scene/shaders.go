// SPDX-License-Identifier: GPL-2.0-or-later

package scene

import "goscene/gpu"

var meshShader = &gpu.ShaderSource{
	Name: "mesh",
	Vertex: `
#version 330 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aTexCoords;

out vec3 Normal;
out vec3 FragPos;
out vec2 TexCoords;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

void main() {
  FragPos = vec3(model * vec4(aPos, 1.0));
  Normal = mat3(transpose(inverse(model))) * aNormal;
  TexCoords = aTexCoords;
  gl_Position = projection * view * vec4(FragPos, 1.0);
}
`,
	Fragment: `
#version 330 core
out vec4 FragColor;

in vec3 Normal;
in vec3 FragPos;
in vec2 TexCoords;

uniform vec3 viewPos;
uniform vec3 lightPos;
uniform vec3 lightColor;
uniform sampler2D texture1;
uniform float alpha;

void main() {
  vec3 objectColor = texture(texture1, TexCoords).rgb;

  vec3 ambient = 0.5 * lightColor;

  vec3 norm = normalize(Normal);
  vec3 lightDir = normalize(lightPos - FragPos);
  vec3 diffuse = max(dot(norm, lightDir), 0.0) * lightColor;

  vec3 viewDir = normalize(viewPos - FragPos);
  vec3 reflectDir = reflect(-lightDir, norm);
  float spec = pow(max(dot(viewDir, reflectDir), 0.0), 32);
  vec3 specular = 0.5 * spec * lightColor;

  FragColor = vec4((ambient + diffuse + specular) * objectColor, alpha);
}
`,
}

// Height and normals come from the height map, the vertices only carry the
// flat grid.
var terrainShader = &gpu.ShaderSource{
	Name: "terrain",
	Vertex: `
#version 330 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTex;

out vec3 FragPos;
out float Height;
out vec3 Normal;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;
uniform sampler2D heightMap;
uniform float max_height;

void main() {
  float h = texture(heightMap, aTex).r;
  Height = h;

  vec2 off = 1.0 / vec2(textureSize(heightMap, 0));
  float hL = texture(heightMap, aTex - vec2(off.x, 0)).r;
  float hR = texture(heightMap, aTex + vec2(off.x, 0)).r;
  float hD = texture(heightMap, aTex - vec2(0, off.y)).r;
  float hU = texture(heightMap, aTex + vec2(0, off.y)).r;
  Normal = normalize(vec3(hL - hR, 2.0 / max_height, hD - hU));

  vec4 worldPos = model * vec4(aPos.x, h * max_height, aPos.y, 1.0);
  FragPos = worldPos.xyz;
  gl_Position = projection * view * worldPos;
}
`,
	Fragment: `
#version 330 core
out vec4 FragColor;

in vec3 FragPos;
in float Height;
in vec3 Normal;

uniform vec3 fog_color;
uniform float fog_density;

void main() {
  vec3 sunDir = normalize(vec3(0.3, 1.0, 0.5));
  float diff = max(dot(normalize(Normal), sunDir), 0.25);

  vec3 rock = vec3(0.2);
  vec3 snow = vec3(0.9);
  vec3 lit = mix(rock, snow, Height) * diff;

  float dist = gl_FragCoord.z / gl_FragCoord.w;
  float fog = clamp(exp(-pow(dist * fog_density, 2.0)), 0.0, 1.0);
  FragColor = vec4(mix(fog_color, lit, fog), 1.0);
}
`,
}

// The skybox is drawn at the far plane: z is replaced by w and the depth
// test uses LEQUAL.
var skyboxShader = &gpu.ShaderSource{
	Name: "skybox",
	Vertex: `
#version 330 core
layout (location = 0) in vec3 aPos;
out vec3 TexCoords;

uniform mat4 projection;
uniform mat4 view;

void main() {
  TexCoords = aPos;
  vec4 pos = projection * view * vec4(aPos, 1.0);
  gl_Position = pos.xyww;
}
`,
	Fragment: `
#version 330 core
in vec3 TexCoords;
out vec4 FragColor;
uniform samplerCube skybox;

void main() {
  FragColor = texture(skybox, TexCoords);
}
`,
}
